package api

import (
	"context"
	"log"
	"time"

	"recruit-kit/internal/storage"
)

const auditWriteTimeout = 10 * time.Second

// AuditJob is one conversion record waiting to be written.
type AuditJob struct {
	Conversion storage.Conversion
	Timestamp  time.Time
}

// StartBackgroundWorkers starts the audit log writer.
func (a *API) StartBackgroundWorkers() {
	a.workers.Add(1)
	go a.auditWorker()
	log.Println("[BackgroundJobs] Workers started (audit log)")
}

// auditWorker writes conversion records from the queue. Failures are only
// logged; the request that produced the record has already been answered.
func (a *API) auditWorker() {
	defer a.workers.Done()
	log.Println("[AuditWorker] Started")

	for job := range a.auditQueue {
		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		err := a.audit.SaveConversion(ctx, &job.Conversion)
		cancel()
		if err != nil {
			log.Printf("[AuditWorker] Failed to save conversion %s: %v", job.Conversion.ID, err)
			continue
		}
		log.Printf("[AuditWorker] Saved conversion %s (%s, queued %v ago)",
			job.Conversion.ID, job.Conversion.Status, time.Since(job.Timestamp).Round(time.Millisecond))
	}
	log.Println("[AuditWorker] Stopped")
}

// queueAudit adds a record to the audit queue without blocking.
func (a *API) queueAudit(c storage.Conversion) {
	if a.auditQueue == nil {
		return
	}

	job := AuditJob{Conversion: c, Timestamp: time.Now()}

	// Non-blocking send
	select {
	case a.auditQueue <- job:
	default:
		log.Printf("[BackgroundJobs] Queue full! Dropping audit record %s", c.ID)
	}
}
