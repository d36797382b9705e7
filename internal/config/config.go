package config

// Config represents the complete assetsweep configuration.
// It can be loaded from .assetsweep/config.yml with environment variable overrides.
type Config struct {
	Assets AssetsConfig `yaml:"assets" mapstructure:"assets"`
	Code   CodeConfig   `yaml:"code" mapstructure:"code"`
	Groups GroupsConfig `yaml:"groups" mapstructure:"groups"`
	Scan   ScanConfig   `yaml:"scan" mapstructure:"scan"`
}

// AssetsConfig defines where declared assets live and how they are named in code.
type AssetsConfig struct {
	Roots      []string `yaml:"roots" mapstructure:"roots"`           // directories scanned for asset files
	Extensions []string `yaml:"extensions" mapstructure:"extensions"` // asset file extensions (with leading dot)
	Prefix     string   `yaml:"prefix" mapstructure:"prefix"`         // path prefix of asset literals in code, e.g. "assets/"
}

// CodeConfig defines which files are scanned for asset references.
type CodeConfig struct {
	Roots      []string `yaml:"roots" mapstructure:"roots"`           // directories scanned for source/config/doc files
	Extensions []string `yaml:"extensions" mapstructure:"extensions"` // code file extensions (with leading dot)
	IgnoreDirs []string `yaml:"ignore_dirs" mapstructure:"ignore_dirs"` // directory names excluded from the code scan
}

// GroupsConfig names the constant holder classes the declaration parser recognizes.
type GroupsConfig struct {
	Direct []string `yaml:"direct" mapstructure:"direct"` // classes declaring identifier = 'literal path'
	Alias  []string `yaml:"alias" mapstructure:"alias"`   // classes declaring identifier = DirectGroup.field
}

// ScanConfig tunes scan behavior that does not affect matching semantics.
type ScanConfig struct {
	ProgressEvery int `yaml:"progress_every" mapstructure:"progress_every"` // progress callback cadence in files
}

// Default returns a configuration with sensible defaults for a Flutter-style project.
func Default() *Config {
	return &Config{
		Assets: AssetsConfig{
			Roots: []string{"assets"},
			Extensions: []string{
				".png",
				".jpg",
				".jpeg",
				".gif",
				".webp",
				".bmp",
				".svg",
				".json",
			},
			Prefix: "assets/",
		},
		Code: CodeConfig{
			Roots: []string{"lib", "test"},
			Extensions: []string{
				".dart",
				".yaml",
				".yml",
				".json",
				".md",
			},
			IgnoreDirs: []string{
				".git",
				".dart_tool",
				"build",
				".idea",
				"node_modules",
			},
		},
		Groups: GroupsConfig{
			Direct: []string{"Images", "AppIcons", "Anims"},
			Alias:  []string{"AppAssets"},
		},
		Scan: ScanConfig{
			ProgressEvery: 25,
		},
	}
}
