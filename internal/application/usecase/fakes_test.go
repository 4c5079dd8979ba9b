package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"sort"

	"github.com/rahulxkr/storekart-api/internal/domain"
	"github.com/rahulxkr/storekart-api/internal/domain/entity"
)

// In-memory fakes honoring the repository contracts: soft-deleted rows are
// invisible to finds, credentials survive a general Update, lookups return
// (nil, nil) on no match.

type fakeAdminRepo struct {
	rows map[string]*entity.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{rows: map[string]*entity.Admin{}}
}

func (f *fakeAdminRepo) Create(_ context.Context, a *entity.Admin) error {
	cp := *a
	f.rows[a.ID] = &cp
	return nil
}

func (f *fakeAdminRepo) GetByID(_ context.Context, id string) (*entity.Admin, error) {
	a, ok := f.rows[id]
	if !ok || a.IsDeleted {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*entity.Admin, error) {
	for _, a := range f.rows {
		if a.Email == email && !a.IsDeleted {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminRepo) List(_ context.Context, limit, offset int) ([]*entity.Admin, error) {
	return f.page(limit, offset, func(a *entity.Admin) bool { return true })
}

func (f *fakeAdminRepo) ListActive(_ context.Context, limit, offset int) ([]*entity.Admin, error) {
	return f.page(limit, offset, func(a *entity.Admin) bool { return a.Status == entity.StatusActive })
}

func (f *fakeAdminRepo) page(limit, offset int, keep func(*entity.Admin) bool) ([]*entity.Admin, error) {
	ids := make([]string, 0, len(f.rows))
	for id, a := range f.rows {
		if !a.IsDeleted && keep(a) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	out := make([]*entity.Admin, 0, len(ids))
	for i, id := range ids {
		if i < offset {
			continue
		}
		if limit > 0 && len(out) == limit {
			break
		}
		cp := *f.rows[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeAdminRepo) Update(_ context.Context, a *entity.Admin) error {
	stored, ok := f.rows[a.ID]
	if !ok || stored.IsDeleted {
		return domain.ErrNotFound
	}
	cp := *a
	cp.PasswordHash = stored.PasswordHash
	cp.RefreshToken = stored.RefreshToken
	f.rows[a.ID] = &cp
	return nil
}

func (f *fakeAdminRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	a, ok := f.rows[id]
	if !ok || a.IsDeleted {
		return domain.ErrNotFound
	}
	a.PasswordHash = passwordHash
	return nil
}

func (f *fakeAdminRepo) UpdateRefreshToken(_ context.Context, id, refreshToken string) error {
	a, ok := f.rows[id]
	if !ok || a.IsDeleted {
		return domain.ErrNotFound
	}
	a.RefreshToken = refreshToken
	return nil
}

func (f *fakeAdminRepo) SoftDelete(_ context.Context, id string) error {
	a, ok := f.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	if a.IsDeleted {
		return domain.ErrAlreadyDeleted
	}
	a.IsDeleted = true
	return nil
}

func (f *fakeAdminRepo) HardDelete(_ context.Context, id string) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeAdminRepo) EmailExists(_ context.Context, email, excludeID string, activeOnly bool) (bool, error) {
	return f.exists(excludeID, activeOnly, func(a *entity.Admin) bool { return a.Email == email }), nil
}

func (f *fakeAdminRepo) PhoneExists(_ context.Context, phone, excludeID string, activeOnly bool) (bool, error) {
	return f.exists(excludeID, activeOnly, func(a *entity.Admin) bool { return a.Phone == phone }), nil
}

func (f *fakeAdminRepo) PANExists(_ context.Context, panNumber, excludeID string, activeOnly bool) (bool, error) {
	return f.exists(excludeID, activeOnly, func(a *entity.Admin) bool { return a.PANNumber == panNumber }), nil
}

func (f *fakeAdminRepo) exists(excludeID string, activeOnly bool, match func(*entity.Admin) bool) bool {
	for _, a := range f.rows {
		if a.ID == excludeID {
			continue
		}
		if activeOnly && a.IsDeleted {
			continue
		}
		if match(a) {
			return true
		}
	}
	return false
}

type fakeRoleRepo struct {
	rows map[string]*entity.Role
}

func newFakeRoleRepo(seed ...*entity.Role) *fakeRoleRepo {
	f := &fakeRoleRepo{rows: map[string]*entity.Role{}}
	for _, r := range seed {
		cp := *r
		f.rows[r.ID] = &cp
	}
	return f
}

func (f *fakeRoleRepo) Create(_ context.Context, r *entity.Role) error {
	cp := *r
	f.rows[r.ID] = &cp
	return nil
}

func (f *fakeRoleRepo) GetByID(_ context.Context, id string) (*entity.Role, error) {
	r, ok := f.rows[id]
	if !ok || r.IsDeleted {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRoleRepo) GetByName(_ context.Context, name string) (*entity.Role, error) {
	for _, r := range f.rows {
		if r.Name == name && !r.IsDeleted {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRoleRepo) List(_ context.Context, limit, offset int) ([]*entity.Role, error) {
	out := make([]*entity.Role, 0, len(f.rows))
	for _, r := range f.rows {
		if !r.IsDeleted {
			cp := *r
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRoleRepo) ListActive(_ context.Context, limit, offset int) ([]*entity.Role, error) {
	all, _ := f.List(nil, limit, offset)
	out := all[:0]
	for _, r := range all {
		if r.Status == entity.StatusActive {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoleRepo) Update(_ context.Context, r *entity.Role) error {
	stored, ok := f.rows[r.ID]
	if !ok || stored.IsDeleted {
		return domain.ErrNotFound
	}
	cp := *r
	f.rows[r.ID] = &cp
	return nil
}

func (f *fakeRoleRepo) SoftDelete(_ context.Context, id string) error {
	r, ok := f.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	if r.IsDeleted {
		return domain.ErrAlreadyDeleted
	}
	r.IsDeleted = true
	return nil
}

type fakeStoreRepo struct {
	rows       map[string]*entity.Store
	failCreate error
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{rows: map[string]*entity.Store{}}
}

func (f *fakeStoreRepo) Create(_ context.Context, s *entity.Store) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	cp := *s
	f.rows[s.ID] = &cp
	return nil
}

func (f *fakeStoreRepo) GetByID(_ context.Context, id string) (*entity.Store, error) {
	s, ok := f.rows[id]
	if !ok || s.IsDeleted {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStoreRepo) List(_ context.Context, limit, offset int) ([]*entity.Store, error) {
	out := make([]*entity.Store, 0, len(f.rows))
	for _, s := range f.rows {
		if !s.IsDeleted {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStoreRepo) ListActive(_ context.Context, limit, offset int) ([]*entity.Store, error) {
	all, _ := f.List(nil, limit, offset)
	out := all[:0]
	for _, s := range all {
		if s.Status == entity.StatusActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStoreRepo) Update(_ context.Context, s *entity.Store) error {
	stored, ok := f.rows[s.ID]
	if !ok || stored.IsDeleted {
		return domain.ErrNotFound
	}
	cp := *s
	f.rows[s.ID] = &cp
	return nil
}

func (f *fakeStoreRepo) SoftDelete(_ context.Context, id string) error {
	s, ok := f.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	if s.IsDeleted {
		return domain.ErrAlreadyDeleted
	}
	s.IsDeleted = true
	return nil
}

type fakeCategoryRepo struct {
	rows map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{rows: map[string]*entity.Category{}}
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	c, ok := f.rows[id]
	if !ok || c.IsDeleted {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryRepo) GetByTitle(_ context.Context, title string) (*entity.Category, error) {
	for _, c := range f.rows {
		if c.Title == title && !c.IsDeleted {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) List(_ context.Context, limit, offset int) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(f.rows))
	for _, c := range f.rows {
		if !c.IsDeleted {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCategoryRepo) ListActive(_ context.Context, limit, offset int) ([]*entity.Category, error) {
	all, _ := f.List(nil, limit, offset)
	out := all[:0]
	for _, c := range all {
		if c.Status == entity.StatusActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	stored, ok := f.rows[c.ID]
	if !ok || stored.IsDeleted {
		return domain.ErrNotFound
	}
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) SoftDelete(_ context.Context, id string) error {
	c, ok := f.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	if c.IsDeleted {
		return domain.ErrAlreadyDeleted
	}
	c.IsDeleted = true
	return nil
}

type fakeStoreCategoryRepo struct {
	rows map[string]*entity.StoreCategory
}

func newFakeStoreCategoryRepo() *fakeStoreCategoryRepo {
	return &fakeStoreCategoryRepo{rows: map[string]*entity.StoreCategory{}}
}

func (f *fakeStoreCategoryRepo) Create(_ context.Context, c *entity.StoreCategory) error {
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeStoreCategoryRepo) GetByID(_ context.Context, id string) (*entity.StoreCategory, error) {
	c, ok := f.rows[id]
	if !ok || c.IsDeleted {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeStoreCategoryRepo) GetByTitle(_ context.Context, title string) (*entity.StoreCategory, error) {
	for _, c := range f.rows {
		if c.Title == title && !c.IsDeleted {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStoreCategoryRepo) List(_ context.Context, limit, offset int) ([]*entity.StoreCategory, error) {
	out := make([]*entity.StoreCategory, 0, len(f.rows))
	for _, c := range f.rows {
		if !c.IsDeleted {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStoreCategoryRepo) ListActive(_ context.Context, limit, offset int) ([]*entity.StoreCategory, error) {
	all, _ := f.List(nil, limit, offset)
	out := all[:0]
	for _, c := range all {
		if c.Status == entity.StatusActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStoreCategoryRepo) Update(_ context.Context, c *entity.StoreCategory) error {
	stored, ok := f.rows[c.ID]
	if !ok || stored.IsDeleted {
		return domain.ErrNotFound
	}
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeStoreCategoryRepo) SoftDelete(_ context.Context, id string) error {
	c, ok := f.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	if c.IsDeleted {
		return domain.ErrAlreadyDeleted
	}
	c.IsDeleted = true
	return nil
}

type fakeProductRepo struct {
	rows map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{rows: map[string]*entity.Product{}}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := f.rows[id]
	if !ok || p.IsDeleted {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	return f.filter(func(p *entity.Product) bool { return true }), nil
}

func (f *fakeProductRepo) ListActive(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	return f.filter(func(p *entity.Product) bool { return p.Status == entity.StatusActive }), nil
}

func (f *fakeProductRepo) ListByAdmin(_ context.Context, adminID string, limit, offset int) ([]*entity.Product, error) {
	return f.filter(func(p *entity.Product) bool { return p.AdminID == adminID }), nil
}

func (f *fakeProductRepo) filter(keep func(*entity.Product) bool) []*entity.Product {
	out := make([]*entity.Product, 0, len(f.rows))
	for _, p := range f.rows {
		if !p.IsDeleted && keep(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	stored, ok := f.rows[p.ID]
	if !ok || stored.IsDeleted {
		return domain.ErrNotFound
	}
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) SoftDelete(_ context.Context, id string) error {
	p, ok := f.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.IsDeleted {
		return domain.ErrAlreadyDeleted
	}
	p.IsDeleted = true
	return nil
}

type fakeBannerRepo struct {
	rows map[string]*entity.Banner
}

func newFakeBannerRepo() *fakeBannerRepo {
	return &fakeBannerRepo{rows: map[string]*entity.Banner{}}
}

func (f *fakeBannerRepo) Create(_ context.Context, b *entity.Banner) error {
	cp := *b
	f.rows[b.ID] = &cp
	return nil
}

func (f *fakeBannerRepo) GetByID(_ context.Context, id string) (*entity.Banner, error) {
	b, ok := f.rows[id]
	if !ok || b.IsDeleted {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBannerRepo) List(_ context.Context, limit, offset int) ([]*entity.Banner, error) {
	out := make([]*entity.Banner, 0, len(f.rows))
	for _, b := range f.rows {
		if !b.IsDeleted {
			cp := *b
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeBannerRepo) ListActive(_ context.Context, limit, offset int) ([]*entity.Banner, error) {
	all, _ := f.List(nil, limit, offset)
	out := all[:0]
	for _, b := range all {
		if b.Status == entity.StatusActive {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBannerRepo) Update(_ context.Context, b *entity.Banner) error {
	stored, ok := f.rows[b.ID]
	if !ok || stored.IsDeleted {
		return domain.ErrNotFound
	}
	cp := *b
	f.rows[b.ID] = &cp
	return nil
}

func (f *fakeBannerRepo) SoftDelete(_ context.Context, id string) error {
	b, ok := f.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	if b.IsDeleted {
		return domain.ErrAlreadyDeleted
	}
	b.IsDeleted = true
	return nil
}

var errUploadBroken = errors.New("upload broken")

type fakeUploader struct {
	fail  bool
	calls []string
}

func (f *fakeUploader) Upload(_ context.Context, localPath string) (string, error) {
	if f.fail {
		return "", errUploadBroken
	}
	f.calls = append(f.calls, localPath)
	return "https://cdn.example.com/" + filepath.Base(localPath), nil
}
