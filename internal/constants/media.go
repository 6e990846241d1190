package constants

// Media types exchanged with the router's web interface.
const (
	MediaTypeXML  = "application/xml"
	MediaTypeHTML = "text/html"
)
