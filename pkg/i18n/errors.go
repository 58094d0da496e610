package i18n

import "errors"

var (
	ErrNoTranslations      = errors.New("no translations found")
	ErrFailedToReadCatalog = errors.New("failed to read translation catalog")
	ErrFailedToParseYAML   = errors.New("failed to parse YAML catalog")
	ErrInvalidCatalog      = errors.New("invalid catalog structure")
	ErrDefaultLangMissing  = errors.New("default language has no catalog")
)
