package seed

import (
	"github.com/MrSnakeDoc/foyer/internal/domain"
)

// Mapper converts seed file entries to domain content items.
type Mapper struct{}

// NewMapper creates a new mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapItems converts item properties to content items, skipping entries
// that would not pass validation. The skipped count is returned so the
// importer can log it.
func (m *Mapper) MapItems(props []ItemProps) (items []domain.ContentItem, skipped int) {
	for _, p := range props {
		item := domain.ContentItem{
			Type:     domain.ContentType(p.Type),
			URL:      p.URL,
			Title:    p.Title,
			Duration: p.Duration,
		}
		if err := item.Validate(); err != nil {
			skipped++
			continue
		}
		items = append(items, item)
	}
	return items, skipped
}
