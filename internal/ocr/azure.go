package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"

	"recruit-kit/internal/cv"
	httpclient "recruit-kit/pkg/http"
)

const subscriptionKeyHeader = "Ocp-Apim-Subscription-Key"

var errStillRunning = errors.New("analysis still running")

type AzureConfig struct {
	Endpoint     string
	Key          string
	Model        string
	APIVersion   string
	PollInterval time.Duration
	MaxPolls     int
}

// AzureAnalyzer calls the Document Intelligence analyze operation and polls
// for its result.
type AzureAnalyzer struct {
	cfg    AzureConfig
	client *httpclient.Client
}

func NewAzureAnalyzer(cfg AzureConfig) *AzureAnalyzer {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.MaxPolls <= 0 {
		cfg.MaxPolls = 60
	}
	return &AzureAnalyzer{
		cfg:    cfg,
		client: httpclient.NewClient(30 * time.Second),
	}
}

type analyzeOperation struct {
	Status        string `json:"status"`
	AnalyzeResult *struct {
		Content string        `json:"content"`
		Pages   []analyzePage `json:"pages"`
	} `json:"analyzeResult"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type analyzePage struct {
	PageNumber int     `json:"pageNumber"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Unit       string  `json:"unit"`
	Lines      []struct {
		Content string    `json:"content"`
		Polygon []float64 `json:"polygon"`
	} `json:"lines"`
}

func (a *AzureAnalyzer) Analyze(ctx context.Context, data []byte, fileName string) (*cv.ExtractedDocument, error) {
	opURL, err := a.submit(ctx, data)
	if err != nil {
		return nil, err
	}
	log.Printf("[OCR] Submitted %s (%d bytes)", fileName, len(data))

	op, err := a.poll(ctx, opURL)
	if err != nil {
		return nil, err
	}

	doc := toDocument(op)
	if strings.TrimSpace(doc.Content) == "" {
		return nil, ErrEmptyDocument
	}
	log.Printf("[OCR] Analyzed %s: %d pages, %d characters", fileName, len(doc.Pages), len(doc.Content))
	return doc, nil
}

func (a *AzureAnalyzer) submit(ctx context.Context, data []byte) (string, error) {
	url := fmt.Sprintf("%s/formrecognizer/documentModels/%s:analyze?api-version=%s",
		strings.TrimRight(a.cfg.Endpoint, "/"), a.cfg.Model, a.cfg.APIVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set(subscriptionKeyHeader, a.cfg.Key)

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("submit analysis: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("submit analysis: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	opURL := resp.Header.Get("Operation-Location")
	if opURL == "" {
		return "", fmt.Errorf("submit analysis: response has no Operation-Location header")
	}
	return opURL, nil
}

func (a *AzureAnalyzer) poll(ctx context.Context, opURL string) (*analyzeOperation, error) {
	var result *analyzeOperation

	err := retry.Do(
		func() error {
			op, err := a.fetch(ctx, opURL)
			if err != nil {
				return err
			}
			switch strings.ToLower(op.Status) {
			case "succeeded":
				result = op
				return nil
			case "failed", "canceled":
				msg := op.Status
				if op.Error != nil {
					msg = op.Error.Code + ": " + op.Error.Message
				}
				return retry.Unrecoverable(fmt.Errorf("%w: %s", ErrAnalysisFailed, msg))
			default:
				return errStillRunning
			}
		},
		retry.Context(ctx),
		retry.Attempts(uint(a.cfg.MaxPolls)),
		retry.Delay(a.cfg.PollInterval),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	if errors.Is(err, errStillRunning) {
		return nil, fmt.Errorf("%w: timed out after %d polls", ErrAnalysisFailed, a.cfg.MaxPolls)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (a *AzureAnalyzer) fetch(ctx context.Context, opURL string) (*analyzeOperation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, opURL, nil)
	if err != nil {
		return nil, retry.Unrecoverable(err)
	}
	req.Header.Set(subscriptionKeyHeader, a.cfg.Key)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("poll analysis: status %d", resp.StatusCode)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return nil, retry.Unrecoverable(err)
		}
		return nil, err
	}

	var op analyzeOperation
	if err := json.NewDecoder(resp.Body).Decode(&op); err != nil {
		return nil, retry.Unrecoverable(fmt.Errorf("poll analysis: decode: %w", err))
	}
	return &op, nil
}

// toDocument maps service lines to spans with bottom-origin coordinates.
// Font size is estimated from the line height, in points for inch-based pages.
func toDocument(op *analyzeOperation) *cv.ExtractedDocument {
	doc := &cv.ExtractedDocument{}
	if op.AnalyzeResult == nil {
		return doc
	}
	doc.Content = op.AnalyzeResult.Content

	for _, p := range op.AnalyzeResult.Pages {
		scale := 1.0
		if p.Unit == "inch" {
			scale = 72
		}
		page := cv.Page{Width: p.Width * scale, Height: p.Height * scale}

		for _, l := range p.Lines {
			if len(l.Polygon) < 2 {
				continue
			}
			minX, minY := math.Inf(1), math.Inf(1)
			maxX, maxY := math.Inf(-1), math.Inf(-1)
			for i := 0; i+1 < len(l.Polygon); i += 2 {
				x, y := l.Polygon[i]*scale, l.Polygon[i+1]*scale
				minX, maxX = math.Min(minX, x), math.Max(maxX, x)
				minY, maxY = math.Min(minY, y), math.Max(maxY, y)
			}
			height := maxY - minY
			page.Spans = append(page.Spans, cv.Span{
				Content: l.Content,
				BoundingBox: cv.BoundingBox{
					X:      minX,
					Y:      page.Height - maxY,
					Width:  maxX - minX,
					Height: height,
				},
				Appearance: cv.Appearance{FontSize: height},
			})
		}
		doc.Pages = append(doc.Pages, page)
	}
	return doc
}
