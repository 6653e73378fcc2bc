package formly

import (
	"github.com/goliatone/go-formly/pkg/render/template"
	"github.com/goliatone/go-formly/pkg/tags"
)

// Option configures a Renderer during construction.
type Option func(*Renderer)

// WithConfig replaces the rendering configuration.
func WithConfig(cfg Config) Option {
	return func(r *Renderer) {
		r.config = cfg
	}
}

// WithDefaults sets the form-level default values keyed by field name.
func WithDefaults(defaults map[string]string) Option {
	return func(r *Renderer) {
		r.defaults = cloneStrings(defaults)
	}
}

// WithTagBuilder swaps the tag builder. Nil keeps the default builder.
func WithTagBuilder(builder TagBuilder) Option {
	return func(r *Renderer) {
		if builder != nil {
			r.tags = builder
		}
	}
}

// WithRequestSources installs request collaborators at construction time.
func WithRequestSources(req Request) Option {
	return func(r *Renderer) {
		r.request = r.request.merge(req)
	}
}

// WithRequiredPolicy overrides how required fields are detected. By default
// the Config.RequiredLabel suffix marker is used.
func WithRequiredPolicy(policy RequiredPolicy) Option {
	return func(r *Renderer) {
		r.required = policy
	}
}

// WithMessageFilter transforms inline error text before it is emitted, for
// example sanitize.Message. Messages are emitted verbatim otherwise. A message
// the filter reduces to "" still marks the control group with the error class
// but renders no inline span.
func WithMessageFilter(filter func(string) string) Option {
	return func(r *Renderer) {
		r.messageFilter = filter
	}
}

// WithChromeTemplates renders control groups through the chrome/control_group
// template. The template receives class and error as plain strings, and
// label, field and inline as template.HTML, which the pongo engine emits
// unescaped. The built-in markup is used whenever the template fails.
func WithChromeTemplates(renderer template.TemplateRenderer) Option {
	return func(r *Renderer) {
		r.chrome = renderer
	}
}

// Renderer builds form fragments. It is immutable once constructed; the With*
// methods return modified copies.
type Renderer struct {
	config        Config
	defaults      map[string]string
	tags          TagBuilder
	request       Request
	required      RequiredPolicy
	messageFilter func(string) string
	chrome        template.TemplateRenderer
}

// New constructs a Renderer using DefaultConfig and the default tag builder
// unless options say otherwise.
func New(options ...Option) *Renderer {
	r := &Renderer{
		config: DefaultConfig(),
		tags:   tags.New(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.required == nil {
		r.required = SuffixMarker(r.config.RequiredLabel)
	}
	return r
}

// Config returns a copy of the active configuration.
func (r *Renderer) Config() Config {
	return r.config
}

// Defaults returns a copy of the form-level defaults.
func (r *Renderer) Defaults() map[string]string {
	return cloneStrings(r.defaults)
}

// WithRequest returns a copy bound to the supplied request collaborators.
// Nil members keep the collaborators already configured.
func (r *Renderer) WithRequest(req Request) *Renderer {
	clone := *r
	clone.request = r.request.merge(req)
	return &clone
}

// ReplaceDefaults returns a copy whose form-level defaults are replaced
// wholesale by defaults.
func (r *Renderer) ReplaceDefaults(defaults map[string]string) *Renderer {
	clone := *r
	clone.defaults = cloneStrings(defaults)
	return &clone
}

func cloneStrings(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}
