package siteconfig

// PublicConfig is the subset of the site document safe to hand to browsers.
// OAuth client IDs, notification addresses, and analytics settings are left
// out; only the publishable payment key crosses this boundary.
type PublicConfig struct {
	Company      Company            `json:"company"`
	Hero         Hero               `json:"hero"`
	Features     []Feature          `json:"features"`
	Pricing      Pricing            `json:"pricing"`
	Testimonials []Testimonial      `json:"testimonials"`
	Social       Social             `json:"social"`
	CTA          CTA                `json:"cta"`
	LeadForm     LeadForm           `json:"leadForm"`
	Auth         PublicAuth         `json:"auth"`
	Integrations PublicIntegrations `json:"integrations"`
}

// PublicAuth exposes provider toggles only.
type PublicAuth struct {
	Providers struct {
		Google ProviderFlag `json:"google"`
		GitHub ProviderFlag `json:"github"`
		Email  ProviderFlag `json:"email"`
	} `json:"providers"`
}

// ProviderFlag reports whether a sign-in provider is shown.
type ProviderFlag struct {
	Enabled bool `json:"enabled"`
}

// PublicIntegrations exposes the publishable Stripe key.
type PublicIntegrations struct {
	Stripe StripeIntegration `json:"stripe"`
}

// Public returns the redacted projection served by the config endpoint.
func (s *Site) Public() PublicConfig {
	pc := PublicConfig{
		Company:      s.Company,
		Hero:         s.Hero,
		Features:     nonNil(s.Features),
		Pricing:      s.Pricing,
		Testimonials: nonNil(s.Testimonials),
		Social:       s.Social,
		CTA:          s.CTA,
		LeadForm:     s.LeadForm,
		Integrations: PublicIntegrations{Stripe: s.Integrations.Stripe},
	}
	pc.Auth.Providers.Google.Enabled = s.Auth.Providers.Google.Enabled
	pc.Auth.Providers.GitHub.Enabled = s.Auth.Providers.GitHub.Enabled
	pc.Auth.Providers.Email.Enabled = s.Auth.Providers.Email.Enabled
	return pc
}

// nonNil keeps empty lists encoding as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
