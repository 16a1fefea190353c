package docs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Hirosolo/traindiary-new-frontend-sub000/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:embed swagger.json
var swaggerDoc []byte

//go:embed viewer.html
var viewerPage []byte

type Handler struct {
	document []byte
	viewer   []byte
}

// NewHandler prepares the API description for the configured API host. With
// no host the document carries no "host" and viewers use the page origin.
func NewHandler(apiHost string) (*Handler, error) {
	document, err := Document(apiHost)
	if err != nil {
		return nil, err
	}

	return &Handler{
		document: document,
		viewer:   viewerPage,
	}, nil
}

// Document returns the embedded Swagger 2.0 document with host and schemes
// adapted to apiHost.
func Document(apiHost string) ([]byte, error) {
	var doc map[string]any
	if err := json.Unmarshal(swaggerDoc, &doc); err != nil {
		return nil, fmt.Errorf("decode embedded swagger document: %w", err)
	}

	delete(doc, "host")
	if apiHost = strings.TrimSpace(apiHost); apiHost != "" {
		if !strings.Contains(apiHost, "://") {
			apiHost = "https://" + apiHost
		}
		hostURL, err := url.Parse(apiHost)
		if err != nil || hostURL.Host == "" {
			return nil, fmt.Errorf("invalid api host %q", apiHost)
		}
		doc["host"] = hostURL.Host
		doc["schemes"] = []string{hostURL.Scheme}
	}

	return json.MarshalIndent(doc, "", "  ")
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/docs", h.handleViewer).Methods("GET").Name("docs")
	router.HandleFunc("/docs/swagger.json", h.handleDocument).Methods("GET").Name("docs-swagger")
}

func (h *Handler) handleViewer(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteResponseBytesOK(w, pkg.ContentType.HTML, h.viewer)
}

func (h *Handler) handleDocument(w http.ResponseWriter, _ *http.Request) {
	log.Trace("serving swagger document")
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, h.document)
}
