package miracle

import "github.com/magabrotheeeer/miracle-catalog/internal/models"

func ptr(s string) *string { return &s }

// Template возвращает пример документа для массового импорта.
func Template() models.BulkImportRequest {
	return models.BulkImportRequest{
		Miracles: []models.MiracleInput{{
			Name:                  "Milagre de Lanciano",
			Country:               "Itália",
			CountryFlag:           "🇮🇹",
			City:                  "Lanciano",
			Century:               "VIII",
			Year:                  ptr("750"),
			Status:                models.StatusRecognized,
			HistoricalContext:     "Durante a celebração da missa em Lanciano...",
			PhenomenonDescription: "A hóstia se transformou em carne e o vinho em sangue...",
			Timeline: []models.TimelineEvent{
				{Year: "750", Title: "Ocorrência do milagre", Description: "Um monge basiliano celebrava a missa..."},
				{Year: "1970", Title: "Investigação científica", Description: "Prof. Odoardo Linoli realizou análises..."},
			},
			ScientificReports: []models.ScientificReport{{
				Date:        "1970-1971",
				Description: "Análise histológica e química",
				Experts: []models.ScientificExpert{
					{Name: "Prof. Odoardo Linoli", Institution: "Universidade de Siena", Role: ptr("Anatomopatologista")},
				},
				OriginalExcerpts: []string{"A carne é tecido miocárdico humano..."},
			}},
			ChurchVerdict: "Reconhecido oficialmente pela Igreja Católica",
			Media: []models.MediaItem{
				{Type: "image", URL: "https://example.com/image.jpg", Title: "Relíquia de Lanciano", Category: ptr("current")},
			},
			References: []models.Reference{
				{Citation: "LINOLI, Odoardo. Ricerche istologiche, immunologiche e biochimiche sulla carne e sul sangue del Miracolo Eucaristico di Lanciano. 1971."},
			},
			Translations: map[string]models.MiracleTranslation{
				"en": {
					Name:                  "Miracle of Lanciano",
					HistoricalContext:     "During the celebration of mass in Lanciano...",
					PhenomenonDescription: "The host transformed into flesh and the wine into blood...",
					ChurchVerdict:         "Officially recognized by the Catholic Church",
				},
				"es": {
					Name:                  "Milagro de Lanciano",
					HistoricalContext:     "Durante la celebración de la misa en Lanciano...",
					PhenomenonDescription: "La hostia se transformó en carne y el vino en sangre...",
					ChurchVerdict:         "Reconocido oficialmente por la Iglesia Católica",
				},
			},
		}},
	}
}
