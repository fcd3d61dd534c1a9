package service

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"

	"github.com/lshigami/scribeset/internal/model"
	"github.com/lshigami/scribeset/internal/repository"
	"gorm.io/gorm"
)

type fakePromptRepo struct {
	prompts []model.PromptWithCount
	err     error
	nextID  uint
}

func (r *fakePromptRepo) Create(_ context.Context, p *model.Prompt) error {
	if r.err != nil {
		return r.err
	}
	r.nextID++
	p.ID = r.nextID
	r.prompts = append(r.prompts, model.PromptWithCount{Prompt: *p})
	return nil
}

func (r *fakePromptRepo) FindByID(_ context.Context, id uint) (*model.Prompt, error) {
	for _, p := range r.prompts {
		if p.ID == id {
			prompt := p.Prompt
			return &prompt, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePromptRepo) FindAllWithSubmissionCount(context.Context) ([]model.PromptWithCount, error) {
	return r.prompts, r.err
}

func (r *fakePromptRepo) Delete(_ context.Context, id uint) error {
	for i, p := range r.prompts {
		if p.ID == id {
			r.prompts = append(r.prompts[:i], r.prompts[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeSubmissionRepo struct {
	mu          sync.Mutex
	submissions map[uint]*model.Submission
	moderators  map[uint]*model.Moderator
	nextID      uint
	createErr   error
	reviewErr   error
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{
		submissions: map[uint]*model.Submission{},
		moderators:  map[uint]*model.Moderator{},
	}
}

func (r *fakeSubmissionRepo) add(s model.Submission) *model.Submission {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == 0 {
		r.nextID++
		s.ID = r.nextID
	} else if s.ID > r.nextID {
		r.nextID = s.ID
	}
	r.submissions[s.ID] = &s
	return &s
}

func (r *fakeSubmissionRepo) Create(_ context.Context, s *model.Submission) error {
	if r.createErr != nil {
		return r.createErr
	}
	stored := r.add(*s)
	s.ID = stored.ID
	return nil
}

func (r *fakeSubmissionRepo) FindByID(_ context.Context, id uint) (*model.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.submissions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	if cp.VerifiedByID != nil {
		cp.VerifiedBy = r.moderators[*cp.VerifiedByID]
	}
	return &cp, nil
}

func (r *fakeSubmissionRepo) sorted() []model.Submission {
	out := make([]model.Submission, 0, len(r.submissions))
	for _, s := range r.submissions {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakeSubmissionRepo) List(_ context.Context, filter repository.SubmissionFilter) ([]model.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Submission
	for _, s := range r.sorted() {
		if filter.Status == nil || s.Status == *filter.Status {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSubmissionRepo) ListForExport(ctx context.Context, status model.SubmissionStatus) ([]model.Submission, error) {
	return r.List(ctx, repository.SubmissionFilter{Status: &status})
}

func (r *fakeSubmissionRepo) UpdateStatus(_ context.Context, id uint, status model.SubmissionStatus, moderatorID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.submissions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.Status = status
	mid := moderatorID
	s.VerifiedByID = &mid
	return nil
}

func (r *fakeSubmissionRepo) UpdateStatusBulk(_ context.Context, ids []uint, status model.SubmissionStatus, moderatorID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, id := range ids {
		if s, ok := r.submissions[id]; ok {
			s.Status = status
			mid := moderatorID
			s.VerifiedByID = &mid
			n++
		}
	}
	return n, nil
}

func (r *fakeSubmissionRepo) ApplyReview(_ context.Context, id uint, status *model.SubmissionStatus, moderatorID uint, notes *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.reviewErr != nil {
		return r.reviewErr
	}
	s, ok := r.submissions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if status != nil {
		s.Status = *status
		mid := moderatorID
		s.VerifiedByID = &mid
	}
	if notes != nil {
		n := *notes
		s.Notes = &n
	}
	return nil
}

type fakeModeratorRepo struct {
	byName map[string]*model.Moderator
	nextID uint
}

func newFakeModeratorRepo() *fakeModeratorRepo {
	return &fakeModeratorRepo{byName: map[string]*model.Moderator{}}
}

func (r *fakeModeratorRepo) Create(_ context.Context, m *model.Moderator) error {
	if _, exists := r.byName[m.Username]; exists {
		return errors.New("duplicate username")
	}
	r.nextID++
	m.ID = r.nextID
	cp := *m
	r.byName[m.Username] = &cp
	return nil
}

func (r *fakeModeratorRepo) FindByID(_ context.Context, id uint) (*model.Moderator, error) {
	for _, m := range r.byName {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeModeratorRepo) FindByUsername(_ context.Context, username string) (*model.Moderator, error) {
	m, ok := r.byName[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m
	return &cp, nil
}

type fakeImageStore struct {
	err      error
	uploads  []ImageUpload
	received [][]byte
}

func (s *fakeImageStore) Upload(_ context.Context, img ImageUpload) (*StoredImage, error) {
	if s.err != nil {
		return nil, s.err
	}
	data, err := io.ReadAll(img.Reader)
	if err != nil {
		return nil, err
	}
	s.uploads = append(s.uploads, img)
	s.received = append(s.received, data)
	return &StoredImage{URL: "https://img.example/" + img.Filename, PublicID: "folder/" + img.Filename}, nil
}

func repositoryFilterAll() repository.SubmissionFilter {
	return repository.SubmissionFilter{}
}
