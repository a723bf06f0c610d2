// Copyright (C) 2025 the premier-inn maintainers
// See root-dir/LICENSE for more information

package db

import (
	"context"

	"github.com/vbhvn08/premier-inn/internal/model"
)

type TranslationStore interface {
	ListLanguages(context.Context) ([]string, error)
	ByLanguage(context.Context, string) (*model.Translation, error)
	CreateLanguage(context.Context, string, *model.Translation) error
}
