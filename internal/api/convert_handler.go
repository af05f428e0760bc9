package api

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"recruit-kit/internal/blob"
	"recruit-kit/internal/convert"
	"recruit-kit/internal/cv"
	"recruit-kit/internal/render"
	"recruit-kit/internal/storage"
)

const (
	defaultSASExpiry = 60 * time.Minute
	blobPrefix       = "branded"
)

// ConvertResponse is returned by a successful conversion.
type ConvertResponse struct {
	Message  string `json:"message"`
	DocxURL  string `json:"docxUrl"`
	PDFURL   string `json:"pdfUrl"`
	FileName string `json:"fileName"`
}

// ConvertCVHandler converts an uploaded CV into branded DOCX and PDF documents
// @Summary Convert CV
// @Description Upload a CV (PDF, DOC, DOCX), extract its sections and return time-limited links to the branded DOCX and PDF
// @Tags cv
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CV file"
// @Param positionTitle formData string false "Position the candidate is presented for"
// @Param accountManager formData string false "Account manager ID (defaults to the first configured)"
// @Success 200 {object} ConvertResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /cv/convert [post]
func (a *API) ConvertCVHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		a.writeError(w, methodNotAllowed(r.Method))
		return
	}

	startTime := time.Now()

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "multipart/form-data" {
		a.writeError(w, badRequest("content type must be multipart/form-data", err))
		return
	}

	maxBytes := a.cfg.MaxUploadBytes
	if maxBytes <= 0 {
		maxBytes = 20 << 20
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		a.writeError(w, badRequest(fmt.Sprintf("file too large or invalid (max %d MB)", maxBytes>>20), err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		a.writeError(w, badRequest("no file uploaded", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		a.writeError(w, badRequest("failed to read uploaded file", err))
		return
	}
	if len(data) == 0 {
		a.writeError(w, badRequest("uploaded file is empty", nil))
		return
	}
	fileName := filepath.Base(header.Filename)

	// Configuration
	if a.analyzer == nil {
		a.writeError(w, misconfigured("document analysis is not configured", nil))
		return
	}
	if err := a.cfg.ValidateOCR(); err != nil {
		a.writeError(w, err)
		return
	}
	if err := a.cfg.ValidateStorage(); err != nil {
		a.writeError(w, err)
		return
	}
	if a.store == nil {
		a.writeError(w, misconfigured("blob storage is not configured", nil))
		return
	}
	manager, err := a.cfg.ResolveAccountManager(r.FormValue("accountManager"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	positionTitle := strings.TrimSpace(r.FormValue("positionTitle"))

	record := storage.Conversion{
		ID:               uuid.NewString(),
		FileName:         fileName,
		PositionTitle:    positionTitle,
		AccountManagerID: manager.ID,
		CreatedAt:        startTime.UTC(),
	}
	fail := func(err error) {
		record.Status = storage.StatusFailed
		record.ErrorMessage = err.Error()
		record.DurationMS = time.Since(startTime).Milliseconds()
		a.queueAudit(record)
		a.writeError(w, err)
	}

	log.Printf("[Convert] %s: %d bytes (manager %s)", fileName, len(data), manager.ID)

	analyzeName := fileName
	if convert.IsWordDocument(fileName) && a.converter != nil && a.cfg.SofficePath != "" {
		pdfData, err := a.converter.ToPDF(r.Context(), data, fileName)
		switch {
		case errors.Is(err, convert.ErrDisabled):
			log.Printf("[Convert] Office conversion disabled, analysing %s as is", fileName)
		case err != nil:
			fail(processingFailed("document conversion failed", err))
			return
		default:
			data = pdfData
			analyzeName = strings.TrimSuffix(fileName, filepath.Ext(fileName)) + ".pdf"
		}
	}

	if strings.EqualFold(filepath.Ext(analyzeName), ".pdf") {
		if pages, err := render.PageCount(data); err != nil {
			log.Printf("[Convert] Could not count pages of %s: %v", analyzeName, err)
		} else {
			record.PageCount = pages
		}
	}

	doc, err := a.analyzer.Analyze(r.Context(), data, analyzeName)
	if err != nil {
		fail(processingFailed("document analysis failed", err))
		return
	}

	cvData, err := cv.ExtractCVData(*doc)
	if err != nil {
		fail(err)
		return
	}
	record.CandidateName = cvData.PersonalInfo.Name
	record.SkillCategories = skillCategories(cvData.Skills)

	branded := render.Document{CV: cvData, PositionTitle: positionTitle, AccountManager: manager}
	docxData, err := render.DOCX(branded, a.branding)
	if err != nil {
		fail(processingFailed("failed to generate DOCX", err))
		return
	}
	pdfData, err := render.PDF(branded, a.branding)
	if err != nil {
		fail(processingFailed("failed to generate PDF", err))
		return
	}

	record.DocxBlob = blob.BlobName(blobPrefix, fileName, ".docx")
	record.PDFBlob = blob.BlobName(blobPrefix, fileName, ".pdf")
	urls, err := a.publish(r, []upload{
		{record.DocxBlob, docxData, render.DOCXContentType},
		{record.PDFBlob, pdfData, render.PDFContentType},
	})
	if err != nil {
		fail(processingFailed("failed to store generated documents", err))
		return
	}

	record.Status = storage.StatusSucceeded
	record.DurationMS = time.Since(startTime).Milliseconds()
	a.queueAudit(record)

	log.Printf("[Convert] %s converted for %q in %v", fileName, record.CandidateName, time.Since(startTime))

	writeJSON(w, http.StatusOK, ConvertResponse{
		Message:  "CV converted successfully",
		DocxURL:  urls[0],
		PDFURL:   urls[1],
		FileName: brandedFileName(fileName),
	})
}

type upload struct {
	name        string
	data        []byte
	contentType string
}

// publish uploads every file and returns a read link for each, in order.
func (a *API) publish(r *http.Request, files []upload) ([]string, error) {
	if err := a.store.EnsureContainer(r.Context()); err != nil {
		return nil, err
	}
	expiry := a.cfg.SASExpiry
	if expiry <= 0 {
		expiry = defaultSASExpiry
	}

	urls := make([]string, 0, len(files))
	for _, f := range files {
		if err := a.store.Upload(r.Context(), f.name, f.data, f.contentType); err != nil {
			return nil, err
		}
		link, err := a.store.ReadURL(f.name, expiry)
		if err != nil {
			return nil, err
		}
		urls = append(urls, link)
	}
	return urls, nil
}

// brandedFileName is the suggested download name without extension.
func brandedFileName(fileName string) string {
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	if base == "" {
		base = "cv"
	}
	return base + "_branded"
}

func skillCategories(skills map[string][]string) []string {
	out := make([]string, 0, len(skills))
	for category := range skills {
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}
