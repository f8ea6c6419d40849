package mandel

// Renderer produces the complete Buffer for a Config, or a single error.
type Renderer interface {
	Render(cfg Config) (*Buffer, error)
}

// RenderRequest is the message a client sends to the render service, on the
// websocket as JSON and on the HTTP endpoint as query parameters.
// Point and size fields use the command line syntax.
type RenderRequest struct {
	Threads    int    `json:"threads"`
	Iterations int    `json:"iterations"`
	Resolution string `json:"resolution"`            // WIDTHxHEIGHT
	UpperLeft  string `json:"upper_left,omitempty"`  // REAL,IMAGINARY
	LowerRight string `json:"lower_right,omitempty"` // REAL,IMAGINARY
	Region     string `json:"region,omitempty"`      // landmark name, used when no corners are given
	Palette    string `json:"palette,omitempty"`
}

// RenderResponse precedes the binary PNG message on the websocket. When Error
// is set no image follows.
type RenderResponse struct {
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Bytes  int    `json:"bytes,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Config validates the request and resolves it into a render configuration
// and shader.
func (r RenderRequest) Config() (Config, Shader, error) {
	shader, err := ShaderByName(r.Palette)
	if err != nil {
		return Config{}, nil, err
	}
	res, err := ParseResolution(r.Resolution)
	if err != nil {
		return Config{}, nil, err
	}

	var region Region
	switch {
	case r.UpperLeft != "" || r.LowerRight != "":
		if region.UpperLeft, err = ParseComplex(r.UpperLeft); err != nil {
			return Config{}, nil, err
		}
		if region.LowerRight, err = ParseComplex(r.LowerRight); err != nil {
			return Config{}, nil, err
		}
	case r.Region != "":
		var ok bool
		if region, ok = RegionByName(r.Region); !ok {
			return Config{}, nil, configErrorf("region", "unknown region %q", r.Region)
		}
	default:
		region = WholeSet
	}

	cfg, err := NewConfig(region, res, r.Iterations, r.Threads)
	if err != nil {
		return Config{}, nil, err
	}
	return cfg, shader, nil
}
