package models

import "time"

// Статусы признания чуда.
const (
	StatusRecognized    = "recognized"
	StatusInvestigating = "investigating"
)

// ScientificExpert описывает эксперта, участвовавшего в исследовании.
type ScientificExpert struct {
	Name        string  `json:"name" validate:"required"`
	Institution string  `json:"institution" validate:"required"`
	Role        *string `json:"role"`
}

// ScientificReport описывает научное заключение.
type ScientificReport struct {
	Date             string             `json:"date" validate:"required"`
	Description      string             `json:"description" validate:"required"`
	Experts          []ScientificExpert `json:"experts" validate:"dive"`
	OriginalExcerpts []string           `json:"original_excerpts"`
}

// MediaItem — изображение, видео, ролик youtube или pdf.
type MediaItem struct {
	Type        string  `json:"type" validate:"required,oneof=image video youtube pdf"`
	URL         string  `json:"url" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	Category    *string `json:"category" validate:"omitempty,oneof=historical scientific current"`
}

// Reference — библиографическая ссылка в формате ABNT.
type Reference struct {
	Citation string  `json:"citation" validate:"required"`
	URL      *string `json:"url"`
}

// TimelineEvent — событие на временной шкале.
type TimelineEvent struct {
	Year        string `json:"year" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// MiracleTranslation содержит переведённые текстовые поля (en, es).
type MiracleTranslation struct {
	Name                  string  `json:"name" validate:"required"`
	HistoricalContext     string  `json:"historical_context" validate:"required"`
	PhenomenonDescription string  `json:"phenomenon_description" validate:"required"`
	ChurchVerdict         string  `json:"church_verdict" validate:"required"`
	Summary               *string `json:"summary"`
}

// MiracleInput — тело запроса на создание чуда и элемент массового импорта.
type MiracleInput struct {
	Name                  string                        `json:"name" validate:"required"`
	Country               string                        `json:"country" validate:"required"`
	CountryFlag           string                        `json:"country_flag" validate:"required"`
	City                  string                        `json:"city" validate:"required"`
	Century               string                        `json:"century" validate:"required"`
	Year                  *string                       `json:"year"`
	Status                string                        `json:"status" validate:"required,oneof=recognized investigating"`
	HistoricalContext     string                        `json:"historical_context" validate:"required"`
	PhenomenonDescription string                        `json:"phenomenon_description" validate:"required"`
	Timeline              []TimelineEvent               `json:"timeline" validate:"dive"`
	ScientificReports     []ScientificReport            `json:"scientific_reports" validate:"dive"`
	ChurchVerdict         string                        `json:"church_verdict" validate:"required"`
	CoverImageURL         *string                       `json:"cover_image_url"`
	Media                 []MediaItem                   `json:"media" validate:"dive"`
	References            []Reference                   `json:"references" validate:"dive"`
	Translations          map[string]MiracleTranslation `json:"translations" validate:"dive"`
}

// MiraclePatch — частичное обновление: nil означает "не менять".
type MiraclePatch struct {
	Name                  *string                        `json:"name" validate:"omitempty,min=1"`
	Country               *string                        `json:"country" validate:"omitempty,min=1"`
	CountryFlag           *string                        `json:"country_flag"`
	City                  *string                        `json:"city"`
	Century               *string                        `json:"century" validate:"omitempty,min=1"`
	Year                  *string                        `json:"year"`
	Status                *string                        `json:"status" validate:"omitempty,oneof=recognized investigating"`
	HistoricalContext     *string                        `json:"historical_context"`
	PhenomenonDescription *string                        `json:"phenomenon_description"`
	Timeline              *[]TimelineEvent               `json:"timeline" validate:"omitempty,dive"`
	ScientificReports     *[]ScientificReport            `json:"scientific_reports" validate:"omitempty,dive"`
	ChurchVerdict         *string                        `json:"church_verdict"`
	CoverImageURL         *string                        `json:"cover_image_url"`
	Media                 *[]MediaItem                   `json:"media" validate:"omitempty,dive"`
	References            *[]Reference                   `json:"references" validate:"omitempty,dive"`
	Translations          *map[string]MiracleTranslation `json:"translations" validate:"omitempty,dive"`
}

// Miracle — документ каталога в том виде, в котором он хранится и отдаётся клиенту.
type Miracle struct {
	ID string `json:"id"`
	MiracleInput
	Summary   *string   `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewMiracle собирает документ из входных данных, проставляя идентификатор и метки времени.
func NewMiracle(id string, in MiracleInput, now time.Time) Miracle {
	in.normalize()
	return Miracle{
		ID:           id,
		MiracleInput: in,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Apply переносит в документ все заданные поля патча.
func (m *Miracle) Apply(p MiraclePatch, now time.Time) {
	setString(&m.Name, p.Name)
	setString(&m.Country, p.Country)
	setString(&m.CountryFlag, p.CountryFlag)
	setString(&m.City, p.City)
	setString(&m.Century, p.Century)
	setString(&m.Status, p.Status)
	setString(&m.HistoricalContext, p.HistoricalContext)
	setString(&m.PhenomenonDescription, p.PhenomenonDescription)
	setString(&m.ChurchVerdict, p.ChurchVerdict)
	if p.Year != nil {
		m.Year = p.Year
	}
	if p.CoverImageURL != nil {
		m.CoverImageURL = p.CoverImageURL
	}
	if p.Timeline != nil {
		m.Timeline = *p.Timeline
	}
	if p.ScientificReports != nil {
		m.ScientificReports = *p.ScientificReports
	}
	if p.Media != nil {
		m.Media = *p.Media
	}
	if p.References != nil {
		m.References = *p.References
	}
	if p.Translations != nil {
		m.Translations = *p.Translations
	}
	m.normalize()
	m.UpdatedAt = now
}

// normalize заменяет nil-коллекции пустыми, чтобы клиент всегда получал [] и {}.
func (in *MiracleInput) normalize() {
	if in.Timeline == nil {
		in.Timeline = []TimelineEvent{}
	}
	if in.ScientificReports == nil {
		in.ScientificReports = []ScientificReport{}
	}
	for i := range in.ScientificReports {
		if in.ScientificReports[i].Experts == nil {
			in.ScientificReports[i].Experts = []ScientificExpert{}
		}
		if in.ScientificReports[i].OriginalExcerpts == nil {
			in.ScientificReports[i].OriginalExcerpts = []string{}
		}
	}
	if in.Media == nil {
		in.Media = []MediaItem{}
	}
	if in.References == nil {
		in.References = []Reference{}
	}
	if in.Translations == nil {
		in.Translations = map[string]MiracleTranslation{}
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
