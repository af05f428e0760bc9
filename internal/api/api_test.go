package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"recruit-kit/internal/config"
	"recruit-kit/internal/cv"
	"recruit-kit/internal/holidays"
	"recruit-kit/internal/ocr"
	"recruit-kit/internal/render"
	"recruit-kit/internal/storage"
)

const sampleCV = `Jane Doe
jane.doe@example.com | (555) 123-4567
Sydney, NSW
Professional Summary
Detail oriented test analyst.
Work Experience
Senior QA Engineer
ACME PTY LTD
2019 - Present
- Led the regression programme
Education
Bachelor of Science, University of Technology, 2015-2019
Skills
Selenium, Java, Jira`

type fakeAnalyzer struct {
	content string
	err     error
	gotName string
}

func (f *fakeAnalyzer) Analyze(_ context.Context, _ []byte, fileName string) (*cv.ExtractedDocument, error) {
	f.gotName = fileName
	if f.err != nil {
		return nil, f.err
	}
	return &cv.ExtractedDocument{Content: f.content}, nil
}

type fakeConverter struct {
	calls int
}

func (f *fakeConverter) ToPDF(_ context.Context, _ []byte, _ string) ([]byte, error) {
	f.calls++
	return []byte("%PDF-1.4 converted"), nil
}

type fakeStore struct {
	ensured      int
	contentTypes map[string]string
	err          error
}

func (f *fakeStore) EnsureContainer(context.Context) error {
	f.ensured++
	return f.err
}

func (f *fakeStore) Upload(_ context.Context, name string, _ []byte, contentType string) error {
	if f.contentTypes == nil {
		f.contentTypes = map[string]string{}
	}
	f.contentTypes[name] = contentType
	return nil
}

func (f *fakeStore) ReadURL(name string, expiry time.Duration) (string, error) {
	return "https://blob.test/" + name + "?se=" + expiry.String(), nil
}

type fakeAudit struct {
	mu      sync.Mutex
	saved   []storage.Conversion
	filter  storage.ConversionFilter
	listErr error
}

func (f *fakeAudit) SaveConversion(_ context.Context, c *storage.Conversion) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, *c)
	return nil
}

func (f *fakeAudit) ListConversions(_ context.Context, filter storage.ConversionFilter) ([]storage.Conversion, error) {
	f.filter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	return []storage.Conversion{{ID: "c1", FileName: "jane.pdf", Status: storage.StatusSucceeded}}, nil
}

type fakeHolidays struct {
	country string
	years   []int
}

func (f *fakeHolidays) FetchYears(_ context.Context, years []int, country string) ([]holidays.Holiday, bool) {
	f.country, f.years = country, years
	return []holidays.Holiday{
		{Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Name: "New Year's Day", Global: true},
	}, false
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:             "development",
		OCRProvider:             "local",
		StorageConnectionString: "AccountName=acme;AccountKey=a2V5",
		StorageContainer:        "converted-cvs",
		SASExpiry:               time.Hour,
		AccountManagers:         `[{"id":"am1","name":"Sam Lee","email":"sam@acme.test"},{"id":"am2","name":"Alex Kim","email":"alex@acme.test"}]`,
		DefaultCountry:          "AU",
		MaxUploadBytes:          1 << 20,
	}
}

func testBranding(t *testing.T) render.Branding {
	t.Helper()
	b, err := render.LoadBranding("Acme Talent", "")
	if err != nil {
		t.Fatalf("LoadBranding() error = %v", err)
	}
	return b
}

func multipartRequest(t *testing.T, fileName, content string, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("file", fileName)
		if err != nil {
			t.Fatal(err)
		}
		fw.Write([]byte(content))
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/cv/convert", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return resp
}

func TestConvertCVHandler(t *testing.T) {
	t.Run("converts and publishes both documents", func(t *testing.T) {
		store := &fakeStore{}
		audit := &fakeAudit{}
		a := NewAPI(Deps{
			Config:   testConfig(),
			Analyzer: &fakeAnalyzer{content: sampleCV},
			Store:    store,
			Branding: testBranding(t),
			Audit:    audit,
		})

		rec := httptest.NewRecorder()
		req := multipartRequest(t, "Jane CV.pdf", "%PDF-1.4", map[string]string{
			"positionTitle":  "Test Lead",
			"accountManager": "am2",
		})
		a.ConvertCVHandler(rec, req)
		a.Close()

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		var resp ConvertResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatal(err)
		}
		if resp.FileName != "Jane CV_branded" {
			t.Errorf("fileName = %q", resp.FileName)
		}
		if !strings.HasPrefix(resp.DocxURL, "https://blob.test/branded/") || !strings.HasSuffix(resp.DocxURL, ".docx?se=1h0m0s") {
			t.Errorf("docxUrl = %q", resp.DocxURL)
		}
		if !strings.HasSuffix(resp.PDFURL, "-jane-cv.pdf?se=1h0m0s") {
			t.Errorf("pdfUrl = %q", resp.PDFURL)
		}
		if store.ensured != 1 || len(store.contentTypes) != 2 {
			t.Errorf("store = %+v", store)
		}

		if len(audit.saved) != 1 {
			t.Fatalf("audit records = %d, want 1", len(audit.saved))
		}
		rec0 := audit.saved[0]
		if rec0.Status != storage.StatusSucceeded || rec0.CandidateName != "Jane Doe" || rec0.AccountManagerID != "am2" {
			t.Errorf("audit record = %+v", rec0)
		}
		if len(rec0.SkillCategories) != 3 || rec0.PositionTitle != "Test Lead" {
			t.Errorf("audit record = %+v", rec0)
		}
	})

	t.Run("word documents go through the converter", func(t *testing.T) {
		cfg := testConfig()
		cfg.SofficePath = "soffice"
		analyzer := &fakeAnalyzer{content: sampleCV}
		converter := &fakeConverter{}
		a := NewAPI(Deps{Config: cfg, Analyzer: analyzer, Converter: converter, Store: &fakeStore{}, Branding: testBranding(t)})

		rec := httptest.NewRecorder()
		a.ConvertCVHandler(rec, multipartRequest(t, "jane.docx", "PK", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		if converter.calls != 1 || analyzer.gotName != "jane.pdf" {
			t.Errorf("converter calls = %d, analyzed %q", converter.calls, analyzer.gotName)
		}
	})

	tests := []struct {
		name     string
		mutate   func(*config.Config)
		analyzer *fakeAnalyzer
		req      func(t *testing.T) *http.Request
		status   int
		errType  ErrorType
	}{
		{
			name: "wrong content type",
			req: func(t *testing.T) *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/api/cv/convert", strings.NewReader(`{}`))
				r.Header.Set("Content-Type", "application/json")
				return r
			},
			status:  http.StatusBadRequest,
			errType: ValidationError,
		},
		{
			name:    "missing file",
			req:     func(t *testing.T) *http.Request { return multipartRequest(t, "", "", map[string]string{"positionTitle": "x"}) },
			status:  http.StatusBadRequest,
			errType: ValidationError,
		},
		{
			name:    "missing storage credentials",
			mutate:  func(c *config.Config) { c.StorageConnectionString = "" },
			status:  http.StatusInternalServerError,
			errType: ConfigurationError,
		},
		{
			name:    "missing OCR credentials",
			mutate:  func(c *config.Config) { c.OCRProvider = "azure" },
			status:  http.StatusInternalServerError,
			errType: ConfigurationError,
		},
		{
			name:    "malformed account managers",
			mutate:  func(c *config.Config) { c.AccountManagers = `[{"id":""}]` },
			status:  http.StatusInternalServerError,
			errType: ConfigurationError,
		},
		{
			name:     "analysis failure",
			analyzer: &fakeAnalyzer{err: errors.New("service unavailable")},
			status:   http.StatusInternalServerError,
			errType:  ProcessingError,
		},
		{
			name:     "unsupported format",
			analyzer: &fakeAnalyzer{err: fmt.Errorf("%w: %q", ocr.ErrUnsupportedFormat, ".png")},
			status:   http.StatusBadRequest,
			errType:  ValidationError,
		},
		{
			name:     "nothing recognisable",
			analyzer: &fakeAnalyzer{content: "Jane Doe\nHello there."},
			status:   http.StatusInternalServerError,
			errType:  ExtractionError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			if tt.mutate != nil {
				tt.mutate(cfg)
			}
			analyzer := tt.analyzer
			if analyzer == nil {
				analyzer = &fakeAnalyzer{content: sampleCV}
			}
			req := multipartRequest(t, "jane.pdf", "%PDF-1.4", nil)
			if tt.req != nil {
				req = tt.req(t)
			}

			a := NewAPI(Deps{Config: cfg, Analyzer: analyzer, Store: &fakeStore{}, Branding: testBranding(t)})
			rec := httptest.NewRecorder()
			a.ConvertCVHandler(rec, req)

			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.status, rec.Body.String())
			}
			resp := decodeError(t, rec)
			if resp.Type != tt.errType || resp.Error == "" {
				t.Errorf("error = %+v, want type %s", resp, tt.errType)
			}
		})
	}

	t.Run("details only in development", func(t *testing.T) {
		cfg := testConfig()
		cfg.Environment = "production"
		a := NewAPI(Deps{Config: cfg, Analyzer: &fakeAnalyzer{err: errors.New("boom")}, Store: &fakeStore{}, Branding: testBranding(t)})

		rec := httptest.NewRecorder()
		a.ConvertCVHandler(rec, multipartRequest(t, "jane.pdf", "%PDF", nil))
		if resp := decodeError(t, rec); resp.Details != "" {
			t.Errorf("details = %q in production", resp.Details)
		}

		cfg.Environment = "development"
		rec = httptest.NewRecorder()
		a.ConvertCVHandler(rec, multipartRequest(t, "jane.pdf", "%PDF", nil))
		if resp := decodeError(t, rec); !strings.Contains(resp.Details, "boom") {
			t.Errorf("details = %q in development", resp.Details)
		}
	})

	t.Run("method not allowed", func(t *testing.T) {
		a := NewAPI(Deps{Config: testConfig()})
		rec := httptest.NewRecorder()
		a.ConvertCVHandler(rec, httptest.NewRequest(http.MethodGet, "/api/cv/convert", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("status = %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if resp := decodeError(t, rec); resp.Type != ValidationError || resp.Error != "method GET not allowed" {
			t.Errorf("error = %+v", resp)
		}
	})
}

func TestListConversionsHandler(t *testing.T) {
	t.Run("disabled without a database", func(t *testing.T) {
		a := NewAPI(Deps{Config: testConfig()})
		rec := httptest.NewRecorder()
		a.ListConversionsHandler(rec, httptest.NewRequest(http.MethodGet, "/api/conversions", nil))
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d", rec.Code)
		}
	})

	t.Run("passes the filter through", func(t *testing.T) {
		audit := &fakeAudit{}
		a := NewAPI(Deps{Config: testConfig(), Audit: audit})
		defer a.Close()

		rec := httptest.NewRecorder()
		a.ListConversionsHandler(rec, httptest.NewRequest(http.MethodGet, "/api/conversions?limit=5&name=jane&status=succeeded", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		want := storage.ConversionFilter{CandidateName: "jane", Status: storage.StatusSucceeded, Limit: 5}
		if audit.filter != want {
			t.Errorf("filter = %+v, want %+v", audit.filter, want)
		}
		var got []storage.Conversion
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil || len(got) != 1 {
			t.Errorf("body = %v (%v)", got, err)
		}
	})

	t.Run("rejects a bad limit", func(t *testing.T) {
		a := NewAPI(Deps{Config: testConfig(), Audit: &fakeAudit{}})
		defer a.Close()

		rec := httptest.NewRecorder()
		a.ListConversionsHandler(rec, httptest.NewRequest(http.MethodGet, "/api/conversions?limit=ten", nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d", rec.Code)
		}
	})

	t.Run("method not allowed", func(t *testing.T) {
		a := NewAPI(Deps{Config: testConfig()})
		rec := httptest.NewRecorder()
		a.ListConversionsHandler(rec, httptest.NewRequest(http.MethodDelete, "/api/conversions", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("status = %d", rec.Code)
		}
		if resp := decodeError(t, rec); resp.Type != ValidationError || resp.Error != "method DELETE not allowed" {
			t.Errorf("error = %+v", resp)
		}
	})
}

func TestRouter(t *testing.T) {
	srv := httptest.NewServer(NewRouter(NewAPI(Deps{Config: testConfig()})))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET /health = %d", resp.StatusCode)
	}

	resp2, err := http.Post(srv.URL+"/api/calc/commission/bdm", "application/json", strings.NewReader(`{"revenue":1500000,"gp":0.35}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusOK {
		t.Errorf("POST /api/calc/commission/bdm = %d", resp2.StatusCode)
	}
}
