package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"recruit-kit/internal/calc"
	"recruit-kit/internal/holidays"
)

// serveCalc decodes a JSON input, runs solve and writes the result as JSON,
// or as a spreadsheet when the request asks for ?format=xlsx.
func serveCalc[In any, Out calc.Reporter](a *API, w http.ResponseWriter, r *http.Request, name string, solve func(*http.Request, In) (Out, error)) {
	if r.Method != http.MethodPost {
		a.writeError(w, methodNotAllowed(r.Method))
		return
	}

	var in In
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		a.writeError(w, badRequest("invalid JSON", err))
		return
	}
	out, err := solve(r, in)
	if err != nil {
		a.writeError(w, err)
		return
	}

	if !strings.EqualFold(r.URL.Query().Get("format"), "xlsx") {
		writeJSON(w, http.StatusOK, out)
		return
	}
	data, err := calc.ExportXLSX(out.Report())
	if err != nil {
		a.writeError(w, processingFailed("failed to build spreadsheet", err))
		return
	}
	w.Header().Set("Content-Type", calc.XLSXContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, name))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// ContractorHandler solves the contractor margin calculator
// @Summary Contractor GP
// @Description Derive GP, charge rate or pay rate for a contractor. Add ?format=xlsx for a spreadsheet.
// @Tags calculators
// @Accept json
// @Produce json
// @Param input body calc.ContractorInput true "Calculator input"
// @Param format query string false "xlsx for a spreadsheet"
// @Success 200 {object} calc.ContractorResult
// @Failure 400 {object} ErrorResponse
// @Router /calc/contractor [post]
func (a *API) ContractorHandler(w http.ResponseWriter, r *http.Request) {
	serveCalc(a, w, r, "contractor", func(_ *http.Request, in calc.ContractorInput) (*calc.ContractorResult, error) {
		return calc.SolveContractor(in)
	})
}

// FTEHandler solves the permanent placement fee calculator
// @Summary Permanent placement fee
// @Description Derive the placement fee or fee percentage on a total package. Add ?format=xlsx for a spreadsheet.
// @Tags calculators
// @Accept json
// @Produce json
// @Param input body calc.FTEInput true "Calculator input"
// @Param format query string false "xlsx for a spreadsheet"
// @Success 200 {object} calc.FTEResult
// @Failure 400 {object} ErrorResponse
// @Router /calc/fte [post]
func (a *API) FTEHandler(w http.ResponseWriter, r *http.Request) {
	serveCalc(a, w, r, "placement", func(_ *http.Request, in calc.FTEInput) (*calc.FTEResult, error) {
		return calc.SolveFTE(in)
	})
}

// BDMCommissionHandler applies the BDM commission tiers
// @Summary BDM commission
// @Description Tiered commission on annual revenue above the tier threshold
// @Tags calculators
// @Accept json
// @Produce json
// @Param input body calc.BDMInput true "Revenue and GP"
// @Param format query string false "xlsx for a spreadsheet"
// @Success 200 {object} calc.BDMResult
// @Failure 400 {object} ErrorResponse
// @Router /calc/commission/bdm [post]
func (a *API) BDMCommissionHandler(w http.ResponseWriter, r *http.Request) {
	serveCalc(a, w, r, "bdm-commission", func(_ *http.Request, in calc.BDMInput) (*calc.BDMResult, error) {
		return calc.CalculateBDMCommission(in)
	})
}

// RecruiterCommissionHandler applies the recruiter commission bands
// @Summary Recruiter commission
// @Description Banded commission on quarterly GP above a multiple of base salary
// @Tags calculators
// @Accept json
// @Produce json
// @Param input body calc.RecruiterInput true "Quarterly GP and salary"
// @Param format query string false "xlsx for a spreadsheet"
// @Success 200 {object} calc.RecruiterResult
// @Failure 400 {object} ErrorResponse
// @Router /calc/commission/recruiter [post]
func (a *API) RecruiterCommissionHandler(w http.ResponseWriter, r *http.Request) {
	serveCalc(a, w, r, "recruiter-commission", func(_ *http.Request, in calc.RecruiterInput) (*calc.RecruiterResult, error) {
		return calc.CalculateRecruiterCommission(in)
	})
}

// WorkdaysHandler counts working days between two dates
// @Summary Working days
// @Description Count weekdays that are not public holidays, with optional earnings at a daily rate
// @Tags calculators
// @Accept json
// @Produce json
// @Param input body calc.WorkdaysInput true "Date range (inclusive)"
// @Param format query string false "xlsx for a spreadsheet"
// @Success 200 {object} calc.WorkdaysResult
// @Failure 400 {object} ErrorResponse
// @Router /calc/workdays [post]
func (a *API) WorkdaysHandler(w http.ResponseWriter, r *http.Request) {
	serveCalc(a, w, r, "working-days", func(r *http.Request, in calc.WorkdaysInput) (*calc.WorkdaysResult, error) {
		start, end, err := in.Range()
		if err != nil {
			return nil, err
		}
		if in.Country == "" {
			in.Country = a.cfg.DefaultCountry
		}
		if in.Country == "" {
			in.Country = calc.DefaultCountry
		}
		in.Country = strings.ToUpper(in.Country)

		years := holidays.Years(start, end)
		var (
			hs       []holidays.Holiday
			fallback bool
		)
		if a.holidays != nil {
			hs, fallback = a.holidays.FetchYears(r.Context(), years, in.Country)
		} else {
			for _, y := range years {
				hs = append(hs, holidays.Fallback(y)...)
			}
			fallback = true
		}
		return calc.CountWorkingDays(in, hs, fallback)
	})
}
