package scenefile

// YAMLScene is the document root of a scene file.
type YAMLScene struct {
	Name    string       `yaml:"name"`
	Objects []YAMLObject `yaml:"objects"`
}

// YAMLObject describes one rect, text or group. Fields that do not apply to
// the object's type are ignored.
type YAMLObject struct {
	ID   string `yaml:"id"`
	Type string `yaml:"type"`

	Left   *float64 `yaml:"left"`
	Top    *float64 `yaml:"top"`
	Width  float64  `yaml:"width"`
	Height float64  `yaml:"height"`
	Angle  float64  `yaml:"angle"`
	ScaleX *float64 `yaml:"scale_x"`
	ScaleY *float64 `yaml:"scale_y"`
	SkewX  float64  `yaml:"skew_x"`
	SkewY  float64  `yaml:"skew_y"`
	FlipX  bool     `yaml:"flip_x"`
	FlipY  bool     `yaml:"flip_y"`

	OriginX string `yaml:"origin_x"`
	OriginY string `yaml:"origin_y"`

	AbsolutePositioned bool `yaml:"absolute_positioned"`

	// Text only.
	Text     string  `yaml:"text"`
	FontSize float64 `yaml:"font_size"`

	// Group only.
	Strategy               string       `yaml:"strategy"`
	ObjectsRelativeToGroup bool         `yaml:"objects_relative_to_group"`
	ClipPath               *YAMLObject  `yaml:"clip_path"`
	Objects                []YAMLObject `yaml:"objects"`
}
