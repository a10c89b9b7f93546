package models

// MaxListLimit — верхняя граница выдачи списка чудес.
const MaxListLimit = 1000

// MiracleFilter описывает параметры выборки каталога.
// Пустая строка означает отсутствие фильтра по полю.
type MiracleFilter struct {
	Status  string
	Country string
	Century string
	Search  string // подстрока в названии, без учёта регистра
	Limit   int
}

// Filters — доступные значения фильтров для клиента.
type Filters struct {
	Countries []string `json:"countries"`
	Centuries []string `json:"centuries"`
}

// Stats — агрегаты по каталогу.
type Stats struct {
	Total         int `json:"total"`
	Recognized    int `json:"recognized"`
	Investigating int `json:"investigating"`
	Countries     int `json:"countries"`
}

// ImportedMiracle — успешно импортированный элемент.
type ImportedMiracle struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// ImportError — ошибка импорта элемента с его позицией в запросе.
type ImportError struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Error string `json:"error"`
}

// BulkImportResult — итог массового импорта.
type BulkImportResult struct {
	ImportedCount int               `json:"imported_count"`
	ErrorCount    int               `json:"error_count"`
	Imported      []ImportedMiracle `json:"imported"`
	Errors        []ImportError     `json:"errors"`
}

// BulkImportRequest — тело запроса массового импорта и формат шаблона.
type BulkImportRequest struct {
	Miracles []MiracleInput `json:"miracles" validate:"required"`
}
