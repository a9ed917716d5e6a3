package translator

import "context"

// Translator определяет контракт для перевода произвольного текста на английский.
// Реализация сама определяет исходный язык.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}
