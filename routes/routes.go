package routes

import (
	"net/http"
	"strings"

	"safeindiatransport/auth"
	"safeindiatransport/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withSession resolves a bearer token into a session on the request
// context. Resolution failures leave the session nil; each handler decides
// whether a session (or the admin role) is required.
func withSession(jwtSvc *auth.JWTService, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token := auth.BearerToken(r); token != "" {
			if sess, err := jwtSvc.ResolveSession(token); err == nil {
				r = r.WithContext(auth.WithSession(r.Context(), sess))
			}
		}
		next(w, r)
	}
}

func SetupRoutes(
	jwtSvc *auth.JWTService,
	userHandler *handlers.UserHandler,
	biltyHandler *handlers.BiltyHandler,
	partyHandler *handlers.PartyHandler,
	vehicleHandler *handlers.VehicleHandler,
	dashboardHandler *handlers.DashboardHandler,
	publicHandler *handlers.PublicHandler,
	pdfHandler *handlers.PDFHandler,
) {
	route := func(pattern string, handler http.HandlerFunc) {
		http.Handle(pattern, withCORS(handlers.RecoverWrapper(withSession(jwtSvc, handler))))
	}

	// User routes
	route("/signup", userHandler.Signup)
	route("/login", userHandler.Login)

	// Bilty routes
	route("/bilty", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			biltyHandler.CreateBilty(w, r)
		case http.MethodGet:
			biltyHandler.GetAllBilty(w, r)
		case http.MethodDelete:
			biltyHandler.DeleteBilty(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	route("/bilty/pdf", pdfHandler.BiltyPDF)

	// Bilty subtree: /bilty/{id}, /bilty/{id}/status, /bilty/{id}/share
	route("/bilty/", func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path[len("/bilty/"):], "/"), "/")
		switch {
		case len(parts) == 1 && parts[0] != "":
			id := parts[0]
			switch r.Method {
			case http.MethodGet:
				biltyHandler.GetBiltyByID(w, r, id)
			case http.MethodPut:
				biltyHandler.UpdateBilty(w, r, id)
			default:
				w.WriteHeader(http.StatusMethodNotAllowed)
			}
		case len(parts) == 2 && parts[1] == "status" && r.Method == http.MethodPost:
			biltyHandler.UpdateStatus(w, r, parts[0])
		case len(parts) == 2 && parts[1] == "share" && r.Method == http.MethodPost:
			biltyHandler.ShareBilty(w, r, parts[0])
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	// Party routes
	route("/party", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			partyHandler.CreateParty(w, r)
		case http.MethodGet:
			partyHandler.GetAllParties(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Party subtree: /party/{id}, /party/{id}/bilties
	route("/party/", func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path[len("/party/"):], "/"), "/")
		switch {
		case len(parts) == 1 && parts[0] != "":
			id := parts[0]
			switch r.Method {
			case http.MethodGet:
				partyHandler.GetPartyByID(w, r, id)
			case http.MethodPut:
				partyHandler.UpdateParty(w, r, id)
			case http.MethodDelete:
				partyHandler.DeleteParty(w, r, id)
			default:
				w.WriteHeader(http.StatusMethodNotAllowed)
			}
		case len(parts) == 2 && parts[1] == "bilties" && r.Method == http.MethodGet:
			partyHandler.GetPartyBilties(w, r, parts[0])
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	// Vehicle routes
	route("/vehicle", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			vehicleHandler.CreateVehicle(w, r)
		case http.MethodGet:
			vehicleHandler.GetAllVehicles(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	route("/vehicle/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.Trim(r.URL.Path[len("/vehicle/"):], "/")
		if id == "" || r.Method != http.MethodGet {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		vehicleHandler.GetVehicleByID(w, r, id)
	})

	// Dashboard
	route("/dashboard", dashboardHandler.GetSummary)

	// Public tracking (no session needed)
	route("/public/bilty/", func(w http.ResponseWriter, r *http.Request) {
		publicID := strings.Trim(r.URL.Path[len("/public/bilty/"):], "/")
		if publicID == "" || r.Method != http.MethodGet {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		publicHandler.TrackBilty(w, r, publicID)
	})
}
