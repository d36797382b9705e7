package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoAssetRoots indicates an empty asset root list
	ErrNoAssetRoots = errors.New("no asset roots configured")

	// ErrNoCodeRoots indicates an empty code root list
	ErrNoCodeRoots = errors.New("no code roots configured")

	// ErrInvalidExtension indicates a malformed extension entry
	ErrInvalidExtension = errors.New("invalid extension")

	// ErrInvalidPrefix indicates a malformed asset path prefix
	ErrInvalidPrefix = errors.New("invalid asset prefix")

	// ErrNoDirectGroups indicates an empty direct group list
	ErrNoDirectGroups = errors.New("no direct groups configured")

	// ErrInvalidGroupName indicates a group name that cannot appear in a declaration
	ErrInvalidGroupName = errors.New("invalid group name")

	// ErrGroupOverlap indicates a name listed as both a direct and an alias group
	ErrGroupOverlap = errors.New("group listed as both direct and alias")

	// ErrInvalidCadence indicates a non-positive progress cadence
	ErrInvalidCadence = errors.New("invalid progress cadence")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if err := validateAssets(&cfg.Assets); err != nil {
		errs = append(errs, err)
	}

	if err := validateCode(&cfg.Code); err != nil {
		errs = append(errs, err)
	}

	if err := validateGroups(&cfg.Groups); err != nil {
		errs = append(errs, err)
	}

	if cfg.Scan.ProgressEvery <= 0 {
		errs = append(errs, fmt.Errorf("%w: scan.progress_every must be positive, got %d", ErrInvalidCadence, cfg.Scan.ProgressEvery))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateAssets(cfg *AssetsConfig) error {
	var errs []error

	if len(cfg.Roots) == 0 {
		errs = append(errs, fmt.Errorf("%w: assets.roots is required", ErrNoAssetRoots))
	}

	errs = append(errs, validateExtensions("assets.extensions", cfg.Extensions)...)

	prefix := strings.TrimSpace(cfg.Prefix)
	if prefix == "" {
		errs = append(errs, fmt.Errorf("%w: assets.prefix is required", ErrInvalidPrefix))
	} else if !strings.HasSuffix(prefix, "/") {
		errs = append(errs, fmt.Errorf("%w: assets.prefix must end with '/', got %q", ErrInvalidPrefix, cfg.Prefix))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateCode(cfg *CodeConfig) error {
	var errs []error

	if len(cfg.Roots) == 0 {
		errs = append(errs, fmt.Errorf("%w: code.roots is required", ErrNoCodeRoots))
	}

	errs = append(errs, validateExtensions("code.extensions", cfg.Extensions)...)

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateGroups(cfg *GroupsConfig) error {
	var errs []error

	if len(cfg.Direct) == 0 {
		errs = append(errs, fmt.Errorf("%w: groups.direct is required", ErrNoDirectGroups))
	}

	direct := make(map[string]bool, len(cfg.Direct))
	for _, name := range cfg.Direct {
		if !validGroupName(name) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidGroupName, name))
		}
		direct[name] = true
	}

	for _, name := range cfg.Alias {
		if !validGroupName(name) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidGroupName, name))
		}
		if direct[name] {
			errs = append(errs, fmt.Errorf("%w: %q", ErrGroupOverlap, name))
		}
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateExtensions(field string, extensions []string) []error {
	var errs []error
	for _, ext := range extensions {
		if len(ext) < 2 || ext[0] != '.' {
			errs = append(errs, fmt.Errorf("%w: %s entry %q must start with '.'", ErrInvalidExtension, field, ext))
		}
	}
	return errs
}

// validGroupName reports whether name can appear as a class name in a declaration.
func validGroupName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// joinErrors combines multiple errors into a single error with clear formatting.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}
