// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package siteconfig defines the site document that drives every rendered
// page, the theme compiler, the validator, and the public config API.
//
// A *Site is loaded once at startup and is never mutated afterwards. It is
// passed explicitly to each component constructor and is safe for any number
// of concurrent readers.
package siteconfig

// Site is the root configuration document.
type Site struct {
	Company      Company       `yaml:"company" json:"company"`
	Hero         Hero          `yaml:"hero" json:"hero"`
	Features     []Feature     `yaml:"features" json:"features"`
	Pricing      Pricing       `yaml:"pricing" json:"pricing"`
	Testimonials []Testimonial `yaml:"testimonials" json:"testimonials"`
	Social       Social        `yaml:"social" json:"social"`
	CTA          CTA           `yaml:"cta" json:"cta"`
	Footer       Footer        `yaml:"footer" json:"footer"`
	Auth         Auth          `yaml:"auth" json:"auth"`
	LeadForm     LeadForm      `yaml:"leadForm" json:"leadForm"`
	SEO          SEO           `yaml:"seo" json:"seo"`
	Integrations Integrations  `yaml:"integrations" json:"integrations"`
	Theme        Theme         `yaml:"theme" json:"-"`
	Pages        []Page        `yaml:"pages" json:"pages"`

	fingerprint string
}

// Company holds the site owner's identity and contact details.
type Company struct {
	Name        string `yaml:"name" json:"name"`
	Tagline     string `yaml:"tagline" json:"tagline"`
	Description string `yaml:"description" json:"description"`
	Logo        string `yaml:"logo" json:"logo"`
	Favicon     string `yaml:"favicon" json:"favicon"`
	Email       string `yaml:"email" json:"email"`
	Phone       string `yaml:"phone" json:"phone"`
	Address     string `yaml:"address" json:"address"`
}

// Link is a labelled call-to-action target.
type Link struct {
	Text string `yaml:"text" json:"text"`
	Link string `yaml:"link" json:"link"`
}

// Hero is the top section of the home page.
type Hero struct {
	Headline        string `yaml:"headline" json:"headline"`
	Subheadline     string `yaml:"subheadline" json:"subheadline"`
	CTAButton       Link   `yaml:"ctaButton" json:"ctaButton"`
	SecondaryButton Link   `yaml:"secondaryButton" json:"secondaryButton"`
	BackgroundImage string `yaml:"backgroundImage" json:"backgroundImage,omitempty"`
}

// Feature is one entry of the home page feature grid.
type Feature struct {
	Icon        string `yaml:"icon" json:"icon"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// Pricing is the pricing section with its plans.
type Pricing struct {
	Title     string `yaml:"title" json:"title"`
	Subtitle  string `yaml:"subtitle" json:"subtitle"`
	BadgeText string `yaml:"badgeText" json:"badgeText"`
	Plans     []Plan `yaml:"plans" json:"plans"`
}

// Plan is a single pricing plan. StripePriceID may be empty; the plan still
// renders and checkout reports that payments are not configured.
type Plan struct {
	Name          string   `yaml:"name" json:"name"`
	Price         string   `yaml:"price" json:"price"`
	Period        string   `yaml:"period" json:"period"`
	Description   string   `yaml:"description" json:"description"`
	Features      []string `yaml:"features" json:"features"`
	StripePriceID string   `yaml:"stripePriceId" json:"stripePriceId"`
	Highlighted   bool     `yaml:"highlighted" json:"highlighted"`
	CTAText       string   `yaml:"ctaText" json:"ctaText"`
}

// Testimonial is a customer quote.
type Testimonial struct {
	Name    string `yaml:"name" json:"name"`
	Role    string `yaml:"role" json:"role"`
	Company string `yaml:"company" json:"company"`
	Content string `yaml:"content" json:"content"`
	Avatar  string `yaml:"avatar" json:"avatar,omitempty"`
	Rating  int    `yaml:"rating" json:"rating"`
}

// Social holds the company's social profile URLs.
type Social struct {
	Twitter   string `yaml:"twitter" json:"twitter"`
	Facebook  string `yaml:"facebook" json:"facebook"`
	LinkedIn  string `yaml:"linkedin" json:"linkedin"`
	Instagram string `yaml:"instagram" json:"instagram"`
	GitHub    string `yaml:"github" json:"github"`
}

// SocialLink is one rendered social profile.
type SocialLink struct {
	Platform string
	Icon     string
	URL      string
}

// Links returns the non-empty social links in a fixed platform order.
func (s Social) Links() []SocialLink {
	all := []SocialLink{
		{Platform: "twitter", Icon: "fab fa-twitter", URL: s.Twitter},
		{Platform: "facebook", Icon: "fab fa-facebook", URL: s.Facebook},
		{Platform: "linkedin", Icon: "fab fa-linkedin", URL: s.LinkedIn},
		{Platform: "instagram", Icon: "fab fa-instagram", URL: s.Instagram},
		{Platform: "github", Icon: "fab fa-github", URL: s.GitHub},
	}
	var links []SocialLink
	for _, l := range all {
		if l.URL != "" {
			links = append(links, l)
		}
	}
	return links
}

// CTA is the closing call-to-action banner.
type CTA struct {
	Title      string `yaml:"title" json:"title"`
	Subtitle   string `yaml:"subtitle" json:"subtitle"`
	ButtonText string `yaml:"buttonText" json:"buttonText"`
	ButtonLink string `yaml:"buttonLink" json:"buttonLink"`
}

// Footer holds the footer link columns and copyright line.
type Footer struct {
	Columns   []FooterColumn `yaml:"columns" json:"columns"`
	Copyright string         `yaml:"copyright" json:"copyright"`
}

// FooterColumn is a titled list of footer links.
type FooterColumn struct {
	Title string       `yaml:"title" json:"title"`
	Links []FooterLink `yaml:"links" json:"links"`
}

// FooterLink is a single footer link.
type FooterLink struct {
	Text string `yaml:"text" json:"text"`
	URL  string `yaml:"url" json:"url"`
}

// Auth declares which sign-in providers are shown. Client IDs are
// references for a future OAuth integration and are never exposed.
type Auth struct {
	Providers    AuthProviders `yaml:"providers" json:"providers"`
	RedirectURLs RedirectURLs  `yaml:"redirectUrls" json:"redirectUrls"`
}

// AuthProviders lists the configurable identity providers.
type AuthProviders struct {
	Google OAuthProvider `yaml:"google" json:"google"`
	GitHub OAuthProvider `yaml:"github" json:"github"`
	Email  EmailProvider `yaml:"email" json:"email"`
}

// OAuthProvider is an OAuth identity provider toggle.
type OAuthProvider struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	ClientID string `yaml:"clientId" json:"clientId"`
}

// EmailProvider toggles email/password sign-in.
type EmailProvider struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
}

// RedirectURLs are the post-authentication destinations.
type RedirectURLs struct {
	Success string `yaml:"success" json:"success"`
	Error   string `yaml:"error" json:"error"`
}

// FieldKind selects the HTML control rendered for a lead form field.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldEmail    FieldKind = "email"
	FieldTel      FieldKind = "tel"
	FieldURL      FieldKind = "url"
	FieldNumber   FieldKind = "number"
	FieldSelect   FieldKind = "select"
	FieldTextarea FieldKind = "textarea"
)

// valid reports whether k is a supported field kind.
func (k FieldKind) valid() bool {
	switch k {
	case FieldText, FieldEmail, FieldTel, FieldURL, FieldNumber, FieldSelect, FieldTextarea:
		return true
	}
	return false
}

// LeadForm is the lead capture form. Its field list is the schema for both
// the rendered form and the accepted submission payload.
type LeadForm struct {
	Title          string      `yaml:"title" json:"title"`
	Subtitle       string      `yaml:"subtitle" json:"subtitle"`
	Fields         []FormField `yaml:"fields" json:"fields"`
	SubmitButton   string      `yaml:"submitButton" json:"submitButton"`
	SuccessMessage string      `yaml:"successMessage" json:"successMessage"`
}

// Field returns the schema entry with the given name.
func (f LeadForm) Field(name string) (FormField, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return FormField{}, false
}

// FormField describes one input of the lead form.
type FormField struct {
	Name        string        `yaml:"name" json:"name"`
	Label       string        `yaml:"label" json:"label"`
	Type        FieldKind     `yaml:"type" json:"type"`
	Required    bool          `yaml:"required" json:"required"`
	Placeholder string        `yaml:"placeholder" json:"placeholder,omitempty"`
	Options     []FieldOption `yaml:"options" json:"options,omitempty"`
}

// FieldOption is one choice of a select field.
type FieldOption struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// SEO holds document metadata for the home page.
type SEO struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Keywords    string `yaml:"keywords" json:"keywords"`
	OGImage     string `yaml:"ogImage" json:"ogImage"`
}

// Integrations holds public identifiers of third-party services. Secret
// keys are read from the environment, never from this document.
type Integrations struct {
	Stripe          StripeIntegration    `yaml:"stripe" json:"stripe"`
	GoogleAnalytics AnalyticsIntegration `yaml:"googleAnalytics" json:"googleAnalytics"`
	Email           EmailIntegration     `yaml:"email" json:"email"`
}

// StripeIntegration holds the publishable key used by the browser.
type StripeIntegration struct {
	PublishableKey string `yaml:"publishableKey" json:"publishableKey"`
}

// AnalyticsIntegration toggles the Google Analytics snippet.
type AnalyticsIntegration struct {
	Enabled       bool   `yaml:"enabled" json:"enabled"`
	MeasurementID string `yaml:"measurementId" json:"measurementId"`
}

// EmailIntegration holds lead notification addresses.
type EmailIntegration struct {
	Provider          string `yaml:"provider" json:"provider"`
	FromEmail         string `yaml:"fromEmail" json:"fromEmail"`
	NotificationEmail string `yaml:"notificationEmail" json:"notificationEmail"`
}

// ContentType selects how a custom page body is rendered.
type ContentType string

const (
	ContentSections    ContentType = "sections"
	ContentBlogList    ContentType = "blog_list"
	ContentContactForm ContentType = "contact_form"
)

// SectionType selects how a page section is rendered.
type SectionType string

const (
	SectionText     SectionType = "text"
	SectionTeam     SectionType = "team"
	SectionMarkdown SectionType = "markdown"
)

// Page is a custom page served at an exact path.
type Page struct {
	Path    string      `yaml:"path" json:"path"`
	Title   string      `yaml:"title" json:"title"`
	InMenu  bool        `yaml:"inMenu" json:"inMenu"`
	Content PageContent `yaml:"content" json:"content"`
}

// PageContent is the body of a custom page.
type PageContent struct {
	Type     ContentType `yaml:"type" json:"type"`
	Hero     PageHero    `yaml:"hero" json:"hero"`
	Sections []Section   `yaml:"sections" json:"sections,omitempty"`
}

// PageHero is the banner at the top of a custom page.
type PageHero struct {
	Title    string `yaml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
}

// Section is one block of a sections page.
type Section struct {
	Type    SectionType  `yaml:"type" json:"type"`
	Title   string       `yaml:"title" json:"title"`
	Content string       `yaml:"content" json:"content,omitempty"`
	Members []TeamMember `yaml:"members" json:"members,omitempty"`
}

// TeamMember is one card of a team section.
type TeamMember struct {
	Name   string       `yaml:"name" json:"name"`
	Role   string       `yaml:"role" json:"role"`
	Bio    string       `yaml:"bio" json:"bio"`
	Image  string       `yaml:"image" json:"image"`
	Social MemberSocial `yaml:"social" json:"social"`
}

// MemberSocial holds a team member's profile links.
type MemberSocial struct {
	LinkedIn string `yaml:"linkedin" json:"linkedin,omitempty"`
	Twitter  string `yaml:"twitter" json:"twitter,omitempty"`
}

// FindPage returns the first page declared with exactly the given path.
func (s *Site) FindPage(path string) (*Page, bool) {
	for i := range s.Pages {
		if s.Pages[i].Path == path {
			return &s.Pages[i], true
		}
	}
	return nil, false
}

// MenuPages returns the pages flagged for the navigation menu, in
// declaration order.
func (s *Site) MenuPages() []Page {
	var pages []Page
	for _, p := range s.Pages {
		if p.InMenu {
			pages = append(pages, p)
		}
	}
	return pages
}

// Fingerprint identifies the loaded document. Two sites decoded from the
// same bytes share a fingerprint.
func (s *Site) Fingerprint() string {
	return s.fingerprint
}
