package projects

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/structech/survey-api/internal/database"
	"github.com/structech/survey-api/internal/models"
	userssvc "github.com/structech/survey-api/internal/services/users"
	"gorm.io/gorm"
)

type fixture struct {
	service Service
	users   userssvc.Repository
	db      *gorm.DB
}

func newFixture(t *testing.T) *fixture {
	return newFixtureOpts(t, database.Options{})
}

func newFixtureOpts(t *testing.T, opts database.Options) *fixture {
	t.Helper()

	db, err := database.Initialize(":memory:", opts)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.ProjectUser{},
		&models.ProjectFile{},
		&models.Block{},
		&models.CrackRecord{},
		&models.DesignMap{},
	))

	userRepo := userssvc.NewRepository(db.DB)
	return &fixture{
		service: NewService(NewRepository(db.DB), userRepo),
		users:   userRepo,
		db:      db.DB,
	}
}

func (f *fixture) createUser(t *testing.T, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, PasswordHash: "x", Role: models.RoleProjectUser, Status: true}
	require.NoError(t, f.users.CreateUser(context.Background(), user))
	return user
}

func strPtr(s string) *string { return &s }

func TestCreateProject(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	t.Run("creates project", func(t *testing.T) {
		project, err := f.service.CreateProject(ctx, "  Tunnel A  ", "Acme Civil", strPtr("Sydney"), nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "Tunnel A", project.Name)
		assert.Equal(t, "Acme Civil", project.ClientName)
		require.NotNil(t, project.Location)
		assert.Equal(t, "Sydney", *project.Location)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := f.service.CreateProject(ctx, "   ", "Acme", nil, nil, nil)
		assert.ErrorIs(t, err, ErrEmptyName)
	})
}

func TestListProjects(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	names := []struct {
		name     string
		client   string
		location string
	}{
		{"Harbour Tunnel", "Acme Civil", "Sydney"},
		{"Metro Shaft", "Beta Corp", "Melbourne"},
		{"Pump Station", "Acme Civil", "Brisbane"},
	}
	var ids []uint
	for _, p := range names {
		project, err := f.service.CreateProject(ctx, p.name, p.client, strPtr(p.location), nil, nil)
		require.NoError(t, err)
		ids = append(ids, project.ID)
	}

	member := f.createUser(t, "member@example.com")
	require.NoError(t, f.service.AddMember(ctx, ids[1], member.ID))

	t.Run("unfiltered", func(t *testing.T) {
		page, err := f.service.ListProjects(ctx, ListFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), page.Total)
		assert.Len(t, page.Items, 3)
	})

	t.Run("search spans name client and location", func(t *testing.T) {
		page, err := f.service.ListProjects(ctx, ListFilter{Search: "Acme"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.Total)

		page, err = f.service.ListProjects(ctx, ListFilter{Search: "Melbourne"})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Metro Shaft", page.Items[0].Name)
	})

	t.Run("member restriction", func(t *testing.T) {
		page, err := f.service.ListProjects(ctx, ListFilter{MemberID: &member.ID})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Metro Shaft", page.Items[0].Name)
	})

	t.Run("sort by name descending", func(t *testing.T) {
		page, err := f.service.ListProjects(ctx, ListFilter{SortBy: "name", SortOrder: "desc"})
		require.NoError(t, err)
		require.Len(t, page.Items, 3)
		assert.Equal(t, "Pump Station", page.Items[0].Name)
	})

	t.Run("pagination", func(t *testing.T) {
		page, err := f.service.ListProjects(ctx, ListFilter{Page: 2, PageSize: 2, SortBy: "name"})
		require.NoError(t, err)
		assert.Equal(t, int64(3), page.Total)
		assert.Len(t, page.Items, 1)
	})
}

func TestUpdateProject(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	project, err := f.service.CreateProject(ctx, "Before", "Client", nil, nil, nil)
	require.NoError(t, err)

	t.Run("patches fields", func(t *testing.T) {
		updated, err := f.service.UpdateProject(ctx, project.ID, UpdatePatch{
			Name:        strPtr("After"),
			DesignImage: strPtr("uploads/projects/1/design.png"),
		})
		require.NoError(t, err)
		assert.Equal(t, "After", updated.Name)
		require.NotNil(t, updated.DesignImage)
	})

	t.Run("empty patch rejected", func(t *testing.T) {
		_, err := f.service.UpdateProject(ctx, project.ID, UpdatePatch{})
		assert.ErrorIs(t, err, ErrNothingToUpdate)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		_, err := f.service.UpdateProject(ctx, project.ID, UpdatePatch{Name: strPtr("  ")})
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("unknown project", func(t *testing.T) {
		_, err := f.service.UpdateProject(ctx, 9999, UpdatePatch{Name: strPtr("X")})
		assert.ErrorIs(t, err, ErrProjectNotFound)
	})
}

func TestMembership(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	project, err := f.service.CreateProject(ctx, "Shared", "Client", nil, nil, nil)
	require.NoError(t, err)
	alice := f.createUser(t, "alice@example.com")
	bob := f.createUser(t, "bob@example.com")

	t.Run("add and list", func(t *testing.T) {
		require.NoError(t, f.service.AddMember(ctx, project.ID, alice.ID))
		require.NoError(t, f.service.AddMember(ctx, project.ID, bob.ID))

		members, err := f.service.ListMembers(ctx, project.ID)
		require.NoError(t, err)
		require.Len(t, members, 2)
		assert.Equal(t, "alice@example.com", members[0].Email)

		ok, err := f.service.IsMember(ctx, project.ID, alice.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("duplicate membership conflicts", func(t *testing.T) {
		assert.ErrorIs(t, f.service.AddMember(ctx, project.ID, alice.ID), ErrDuplicateMember)
	})

	t.Run("missing references", func(t *testing.T) {
		assert.ErrorIs(t, f.service.AddMember(ctx, 9999, alice.ID), ErrProjectNotFound)
		assert.ErrorIs(t, f.service.AddMember(ctx, project.ID, 9999), ErrUserNotFound)
	})

	t.Run("remove then re-add", func(t *testing.T) {
		require.NoError(t, f.service.RemoveMember(ctx, project.ID, bob.ID))

		ok, err := f.service.IsMember(ctx, project.ID, bob.ID)
		require.NoError(t, err)
		assert.False(t, ok)

		assert.ErrorIs(t, f.service.RemoveMember(ctx, project.ID, bob.ID), ErrMemberNotFound)
		assert.NoError(t, f.service.AddMember(ctx, project.ID, bob.ID))
	})
}

func TestDeleteProject(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	project, err := f.service.CreateProject(ctx, "Doomed", "Client", nil, nil, nil)
	require.NoError(t, err)
	user := f.createUser(t, "member@example.com")
	require.NoError(t, f.service.AddMember(ctx, project.ID, user.ID))

	require.NoError(t, f.service.DeleteProject(ctx, project.ID))

	_, err = f.service.GetProjectByID(ctx, project.ID)
	assert.ErrorIs(t, err, ErrProjectNotFound)

	ok, err := f.service.IsMember(ctx, project.ID, user.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, f.service.DeleteProject(ctx, project.ID), ErrProjectNotFound)
}

// Opens SQLite with the foreign key pragma on, as the server does, so the
// delete order inside the transaction is actually constraint-checked.
func TestDeleteProjectCascades(t *testing.T) {
	ctx := context.Background()
	f := newFixtureOpts(t, database.Options{EnableForeignKeys: true})

	project, err := f.service.CreateProject(ctx, "Populated", "Client", nil, nil, nil)
	require.NoError(t, err)
	user := f.createUser(t, "member@example.com")
	require.NoError(t, f.service.AddMember(ctx, project.ID, user.ID))

	block := models.Block{ProjectID: project.ID, Name: "B1"}
	require.NoError(t, f.db.Create(&block).Error)
	crack := models.CrackRecord{ProjectID: project.ID, BlockID: block.ID}
	require.NoError(t, f.db.Create(&crack).Error)
	dm := models.DesignMap{ProjectID: project.ID, CrackRecordID: crack.ID, X: 1, Y: 1, Width: 5, Height: 5}
	require.NoError(t, f.db.Create(&dm).Error)
	file := models.ProjectFile{ProjectID: project.ID, OriginalName: "plan.pdf", Filename: "projects/1/files/plan.pdf", UploadedByID: user.ID}
	require.NoError(t, f.db.Create(&file).Error)

	require.NoError(t, f.service.DeleteProject(ctx, project.ID))

	for _, model := range []any{
		&models.DesignMap{},
		&models.CrackRecord{},
		&models.Block{},
		&models.ProjectFile{},
		&models.ProjectUser{},
	} {
		var count int64
		require.NoError(t, f.db.Model(model).Count(&count).Error)
		assert.Zero(t, count, "%T rows should be removed with the project", model)
	}
}
