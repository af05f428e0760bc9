package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Health check (for k8s, App Service probes, etc.)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// CV conversion
	mux.HandleFunc("/api/cv/convert", a.ConvertCVHandler)
	mux.HandleFunc("/api/conversions", a.ListConversionsHandler)

	// Calculators
	mux.HandleFunc("/api/calc/contractor", a.ContractorHandler)
	mux.HandleFunc("/api/calc/fte", a.FTEHandler)
	mux.HandleFunc("/api/calc/commission/bdm", a.BDMCommissionHandler)
	mux.HandleFunc("/api/calc/commission/recruiter", a.RecruiterCommissionHandler)
	mux.HandleFunc("/api/calc/workdays", a.WorkdaysHandler)

	return mux
}
