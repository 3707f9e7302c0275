package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

func NewRouter(handler *Handler) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	// Outermost, so unmatched routes and CORS preflights are tagged and logged too.
	return requestLogger(cors.Default().Handler(r))
}

func StartServer(addr string, handler http.Handler) {
	log.Infof("Backend server running on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
