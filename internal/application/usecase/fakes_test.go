package usecase_test

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/EzequielRindello/StockCore/internal/application/ports"
	"github.com/EzequielRindello/StockCore/internal/domain/entity"
	"github.com/EzequielRindello/StockCore/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los repositorios. Cada fake respeta el contrato del
// puerto ((nil, nil) cuando la fila no existe) y permite forzar un error con
// forcedErr para cubrir los caminos de falla.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	categories    map[int64]*entity.Category
	productCounts map[int64]int
	nextID        int64
	forcedErr     error
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories:    map[int64]*entity.Category{},
		productCounts: map[int64]int{},
	}
}

func (f *fakeCategoryRepo) Create(category *entity.Category) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.nextID++
	category.ID = f.nextID
	clone := *category
	f.categories[category.ID] = &clone
	return nil
}

func (f *fakeCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	category, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	clone := *category
	return &clone, nil
}

func (f *fakeCategoryRepo) List(filter repository.CategoryFilter) ([]repository.CategoryListRow, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	rows := []repository.CategoryListRow{}
	for _, c := range f.categories {
		if filter.Search != "" &&
			!strings.Contains(c.Name, filter.Search) &&
			!strings.Contains(c.Description, filter.Search) {
			continue
		}
		if filter.IsActive != nil && c.IsActive != *filter.IsActive {
			continue
		}
		rows = append(rows, repository.CategoryListRow{Category: *c, ProductCount: f.productCounts[c.ID]})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Category.ID < rows[j].Category.ID })
	return rows, nil
}

func (f *fakeCategoryRepo) CountProducts(categoryID int64) (int, error) {
	if f.forcedErr != nil {
		return 0, f.forcedErr
	}
	return f.productCounts[categoryID], nil
}

func (f *fakeCategoryRepo) AnyWithProducts(ids []int64) (bool, error) {
	if f.forcedErr != nil {
		return false, f.forcedErr
	}
	for _, id := range ids {
		if f.productCounts[id] > 0 {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryRepo) Update(category *entity.Category) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	clone := *category
	f.categories[category.ID] = &clone
	return nil
}

func (f *fakeCategoryRepo) DeleteMany(ids []int64) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	for _, id := range ids {
		delete(f.categories, id)
	}
	return nil
}

var _ repository.CategoryRepository = (*fakeCategoryRepo)(nil)

type fakeProductRepo struct {
	products      map[int64]*entity.Product
	categoryNames map[int64]string
	withMovements map[int64]bool
	nextID        int64
	forcedErr     error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products:      map[int64]*entity.Product{},
		categoryNames: map[int64]string{},
		withMovements: map[int64]bool{},
	}
}

func (f *fakeProductRepo) Create(product *entity.Product) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.nextID++
	product.ID = f.nextID
	clone := *product
	f.products[product.ID] = &clone
	return nil
}

func (f *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	product, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	clone := *product
	return &clone, nil
}

func (f *fakeProductRepo) GetDetail(id int64) (*repository.ProductListRow, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	product, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	return &repository.ProductListRow{Product: *product, CategoryName: f.categoryNames[product.CategoryID]}, nil
}

func (f *fakeProductRepo) List(filter repository.ProductFilter) ([]repository.ProductListRow, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	rows := []repository.ProductListRow{}
	for _, p := range f.products {
		if filter.Search != "" &&
			!strings.Contains(p.Name, filter.Search) &&
			!strings.Contains(p.SKU, filter.Search) {
			continue
		}
		if filter.CategoryID != nil && p.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.IsActive != nil && p.IsActive != *filter.IsActive {
			continue
		}
		rows = append(rows, repository.ProductListRow{Product: *p, CategoryName: f.categoryNames[p.CategoryID]})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Product.ID < rows[j].Product.ID })
	return rows, nil
}

func (f *fakeProductRepo) ListActive() ([]*entity.Product, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	active := []*entity.Product{}
	for _, p := range f.products {
		if p.IsActive {
			clone := *p
			active = append(active, &clone)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].ID < active[j].ID })
	return active, nil
}

func (f *fakeProductRepo) AnyWithMovements(ids []int64) (bool, error) {
	if f.forcedErr != nil {
		return false, f.forcedErr
	}
	for _, id := range ids {
		if f.withMovements[id] {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) Update(product *entity.Product) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	clone := *product
	f.products[product.ID] = &clone
	return nil
}

func (f *fakeProductRepo) DeleteMany(ids []int64) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	for _, id := range ids {
		delete(f.products, id)
	}
	return nil
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

type productRef struct {
	name string
	sku  string
}

type fakeMovementRepo struct {
	movements   map[int64]*entity.StockMovement
	productRefs map[int64]productRef
	nextID      int64
	forcedErr   error
}

func newFakeMovementRepo() *fakeMovementRepo {
	return &fakeMovementRepo{
		movements:   map[int64]*entity.StockMovement{},
		productRefs: map[int64]productRef{},
	}
}

func (f *fakeMovementRepo) Create(movement *entity.StockMovement) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.nextID++
	movement.ID = f.nextID
	clone := *movement
	f.movements[movement.ID] = &clone
	return nil
}

func (f *fakeMovementRepo) GetByID(id int64) (*entity.StockMovement, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	movement, ok := f.movements[id]
	if !ok {
		return nil, nil
	}
	clone := *movement
	return &clone, nil
}

func (f *fakeMovementRepo) GetDetail(id int64) (*repository.MovementListRow, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	movement, ok := f.movements[id]
	if !ok {
		return nil, nil
	}
	ref := f.productRefs[movement.ProductID]
	return &repository.MovementListRow{Movement: *movement, ProductName: ref.name, ProductSKU: ref.sku}, nil
}

func (f *fakeMovementRepo) List(filter repository.MovementFilter) ([]repository.MovementListRow, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	rows := []repository.MovementListRow{}
	for _, m := range f.movements {
		if filter.ProductID != nil && m.ProductID != *filter.ProductID {
			continue
		}
		if filter.MovementType != nil && m.MovementType != *filter.MovementType {
			continue
		}
		if filter.DateFrom != nil && m.CreatedAt.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && !m.CreatedAt.Before(*filter.DateTo) {
			continue
		}
		ref := f.productRefs[m.ProductID]
		rows = append(rows, repository.MovementListRow{Movement: *m, ProductName: ref.name, ProductSKU: ref.sku})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Movement.CreatedAt.After(rows[j].Movement.CreatedAt)
	})
	return rows, nil
}

func (f *fakeMovementRepo) ListByProduct(productID int64) ([]entity.StockMovement, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	movements := []entity.StockMovement{}
	for _, m := range f.movements {
		if m.ProductID == productID {
			movements = append(movements, *m)
		}
	}
	sort.Slice(movements, func(i, j int) bool { return movements[i].ID < movements[j].ID })
	return movements, nil
}

func (f *fakeMovementRepo) Update(movement *entity.StockMovement) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	clone := *movement
	f.movements[movement.ID] = &clone
	return nil
}

func (f *fakeMovementRepo) DeleteMany(ids []int64) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	for _, id := range ids {
		delete(f.movements, id)
	}
	return nil
}

var _ repository.StockMovementRepository = (*fakeMovementRepo)(nil)

type fakeUserRepo struct {
	users     map[string]*entity.User
	forcedErr error
	rehashErr error // solo afecta UpdatePasswordHash
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(user *entity.User) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmailOrUserName(email, userName, excludeID string) (*entity.User, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	for _, u := range f.users {
		if u.ID == excludeID {
			continue
		}
		if u.Email == email || u.UserName == userName {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(search string) ([]*entity.User, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	users := []*entity.User{}
	for _, u := range f.users {
		if search != "" && !strings.Contains(u.UserName, search) && !strings.Contains(u.Email, search) {
			continue
		}
		clone := *u
		users = append(users, &clone)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].UserName < users[j].UserName })
	return users, nil
}

func (f *fakeUserRepo) Update(user *entity.User) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) UpdatePasswordHash(id, hash string) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	if f.rehashErr != nil {
		return f.rehashErr
	}
	if user, ok := f.users[id]; ok {
		user.PasswordHash = hash
	}
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) Count() (int, error) {
	if f.forcedErr != nil {
		return 0, f.forcedErr
	}
	return len(f.users), nil
}

func (f *fakeUserRepo) CountActiveExcept(id string) (int, error) {
	if f.forcedErr != nil {
		return 0, f.forcedErr
	}
	count := 0
	for _, u := range f.users {
		if u.ID != id && u.IsActive {
			count++
		}
	}
	return count, nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

// fakeTxRunner pasa los mismos fakes como repositorios "transaccionales".
// No simula rollback: los tests verifican el Result, no la atomicidad.
type fakeTxRunner struct {
	repos ports.TxRepos
	err   error // si está seteado, Run falla sin ejecutar fn
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(r ports.TxRepos) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(f.repos)
}

var _ ports.TxRunner = (*fakeTxRunner)(nil)

// fakeSessionStore sesiones en memoria con tokens predecibles.
type fakeSessionStore struct {
	sessions map[string]string // token -> userID
	nextID   int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]string{}}
}

func (f *fakeSessionStore) Create(userID string) string {
	f.nextID++
	token := "token-" + strconv.Itoa(f.nextID)
	f.sessions[token] = userID
	return token
}

func (f *fakeSessionStore) Get(token string) (string, bool) {
	userID, ok := f.sessions[token]
	return userID, ok
}

func (f *fakeSessionStore) Destroy(token string) {
	delete(f.sessions, token)
}

var _ ports.SessionStore = (*fakeSessionStore)(nil)
