package service

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/lshigami/scribeset/internal/model"
	"github.com/lshigami/scribeset/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	LabelsFileName  = "labels.csv"
	ImagesDir       = "images/"
	ArchiveFileName = "verified_submissions.zip"
)

var labelsHeader = []string{"image_id", "prompt_text"}

// DatasetArchiver exports submissions as a zip holding labels.csv and the images.
type DatasetArchiver interface {
	// Prepare loads every submission in status. It fails with ErrEmptyArchive
	// when there is nothing to export, before any bytes are written.
	Prepare(ctx context.Context, status model.SubmissionStatus) (*Dataset, error)
	// BuildArchive prepares and writes the whole archive into memory.
	BuildArchive(ctx context.Context, status model.SubmissionStatus) ([]byte, error)
}

// ArchiveStats summarises one archive build.
type ArchiveStats struct {
	Rows    int
	Images  int
	Skipped []uint
}

// Dataset is a materialised set of submissions ready to be written out.
type Dataset struct {
	submissions []model.Submission
	fetcher     ImageFetcher
}

// NewDataset wraps already loaded submissions; each must have its Prompt populated.
func NewDataset(submissions []model.Submission, fetcher ImageFetcher) *Dataset {
	return &Dataset{submissions: submissions, fetcher: fetcher}
}

func (d *Dataset) Len() int { return len(d.submissions) }

type datasetArchiver struct {
	submissionRepo repository.SubmissionRepository
	fetcher        ImageFetcher
}

func NewDatasetArchiver(submissionRepo repository.SubmissionRepository, fetcher ImageFetcher) DatasetArchiver {
	return &datasetArchiver{submissionRepo: submissionRepo, fetcher: fetcher}
}

func (a *datasetArchiver) Prepare(ctx context.Context, status model.SubmissionStatus) (*Dataset, error) {
	submissions, err := a.submissionRepo.ListForExport(ctx, status)
	if err != nil {
		log.Error().Err(err).Str("status", string(status)).Msg("Prepare: repository error")
		return nil, fmt.Errorf("error fetching %s submissions: %w", status, err)
	}
	if len(submissions) == 0 {
		return nil, fmt.Errorf("no %s submissions: %w", status, ErrEmptyArchive)
	}
	return NewDataset(submissions, a.fetcher), nil
}

func (a *datasetArchiver) BuildArchive(ctx context.Context, status model.SubmissionStatus) ([]byte, error) {
	dataset, err := a.Prepare(ctx, status)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := dataset.Write(ctx, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write streams the zip into w. Images are fetched one after another; a failed
// fetch drops that image from the archive while its label row stays.
func (d *Dataset) Write(ctx context.Context, w io.Writer) (*ArchiveStats, error) {
	zw := zip.NewWriter(w)
	stats := &ArchiveStats{}

	var labels bytes.Buffer
	cw := csv.NewWriter(&labels)
	cw.UseCRLF = true
	if err := cw.Write(labelsHeader); err != nil {
		return nil, fmt.Errorf("write labels header: %w", err)
	}

	for i := range d.submissions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sub := &d.submissions[i]
		imageName := fmt.Sprintf("%d.jpg", sub.ID)
		if err := cw.Write([]string{imageName, sub.Prompt.Text}); err != nil {
			return nil, fmt.Errorf("write label row for %d: %w", sub.ID, err)
		}
		stats.Rows++

		data, err := d.fetcher.Fetch(ctx, sub.ImageURL)
		if err != nil {
			log.Warn().Err(err).Uint("submissionID", sub.ID).Str("url", sub.ImageURL).Msg("Skipping image in archive")
			stats.Skipped = append(stats.Skipped, sub.ID)
			continue
		}
		f, err := zw.Create(ImagesDir + imageName)
		if err != nil {
			return nil, fmt.Errorf("create zip entry for %d: %w", sub.ID, err)
		}
		if _, err := f.Write(data); err != nil {
			return nil, fmt.Errorf("write zip entry for %d: %w", sub.ID, err)
		}
		stats.Images++
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("flush labels: %w", err)
	}
	f, err := zw.Create(LabelsFileName)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", LabelsFileName, err)
	}
	if _, err := f.Write(labels.Bytes()); err != nil {
		return nil, fmt.Errorf("write %s: %w", LabelsFileName, err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finish archive: %w", err)
	}

	log.Info().
		Int("rows", stats.Rows).
		Int("images", stats.Images).
		Int("skipped", len(stats.Skipped)).
		Msg("Dataset archive written")
	return stats, nil
}
