package worker

import (
	"errors"
	"fmt"
	"os"

	"github.com/Gunvolt24/storefront/internal/domain"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// ErrInvalidManifest — манифест релиза не прошёл проверку.
var ErrInvalidManifest = errors.New("invalid manifest")

// LoadManifest — читает YAML-манифест релиза и проверяет его.
func LoadManifest(path string) (domain.Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	return ParseManifest(raw)
}

// ParseManifest — разбор и проверка манифеста из YAML.
func ParseManifest(raw []byte) (domain.Manifest, error) {
	var m domain.Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return domain.Manifest{}, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if err := ValidateManifest(m); err != nil {
		return domain.Manifest{}, err
	}
	return m, nil
}

// ValidateManifest — версия обязательна, список ресурсов непуст и без повторов.
func ValidateManifest(m domain.Manifest) error {
	err := validation.ValidateStruct(&m,
		validation.Field(&m.Version, validation.Required),
		validation.Field(&m.Assets, validation.Required, validation.Each(validation.Required)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	seen := make(map[string]struct{}, len(m.Assets))
	for _, a := range m.Assets {
		if _, dup := seen[a]; dup {
			return fmt.Errorf("%w: duplicate asset %q", ErrInvalidManifest, a)
		}
		seen[a] = struct{}{}
	}
	return nil
}
