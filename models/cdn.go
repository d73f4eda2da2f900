package models

// Keys of a CDN object that the prerequisite fixture rewrites for uniqueness.
const (
	CDNNameKey       = "name"
	CDNDomainNameKey = "domainName"
)

// CDN is the typed view of a Traffic Ops CDN object, used by the GET and
// DELETE helpers. Creation payloads stay as raw JSON objects so that any
// extra prerequisite fields reach the server untouched.
type CDN struct {
	ID            int    `json:"id,omitempty"`
	Name          string `json:"name"`
	DomainName    string `json:"domainName"`
	DNSSECEnabled bool   `json:"dnssecEnabled"`
	LastUpdated   string `json:"lastUpdated,omitempty"`
}

// LoginRequest is the body of POST /user/login.
type LoginRequest struct {
	User     string `json:"u"`
	Password string `json:"p"`
}
