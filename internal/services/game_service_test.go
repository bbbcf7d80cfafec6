package services

import (
	"errors"
	"testing"

	"github.com/mertcakir/gameshelf-backend/internal/dto"
	"github.com/mertcakir/gameshelf-backend/internal/models"
	"gorm.io/gorm"
)

func TestGameCreateDuplicateIsCaseInsensitive(t *testing.T) {
	platforms, games := newCatalogs(t)
	pc := mustCreatePlatform(t, platforms, "PC")

	mustCreateGame(t, games, "Portal", pc.ID, false)

	if _, err := games.Create(&dto.CreateGameRequest{Name: "PORTAL", PlatformID: pc.ID}); !errors.Is(err, ErrGameExists) {
		t.Errorf("got %v, want ErrGameExists", err)
	}
}

func TestDatastoreRejectsDuplicateGameRows(t *testing.T) {
	platforms, games := newCatalogs(t)
	pc := mustCreatePlatform(t, platforms, "PC")

	mustCreateGame(t, games, "Portal", pc.ID, false)

	// Bypass the advisory existence check entirely: the unique index on
	// (LOWER(name), platform_id) must reject the row on its own, since two
	// concurrent creates can both pass the check.
	dup := models.Game{Name: "portal", IsActive: true, PlatformID: &pc.ID}
	if err := games.db.Create(&dup).Error; !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("raw duplicate insert: got %v, want ErrDuplicatedKey", err)
	}

	var count int64
	if err := games.db.Table("games").Where("platform_id = ?", pc.ID).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Errorf("duplicate row was stored: count = %d", count)
	}

	// The same name under another platform is still allowed by the index.
	sw := mustCreatePlatform(t, platforms, "Switch")
	other := models.Game{Name: "Portal", IsActive: true, PlatformID: &sw.ID}
	if err := games.db.Create(&other).Error; err != nil {
		t.Errorf("same name on another platform: %v", err)
	}
}

func TestGameCreateSameNameOnDifferentPlatform(t *testing.T) {
	platforms, games := newCatalogs(t)
	pc := mustCreatePlatform(t, platforms, "PC")
	sw := mustCreatePlatform(t, platforms, "Switch")

	mustCreateGame(t, games, "Portal", pc.ID, false)

	game, err := games.Create(&dto.CreateGameRequest{Name: "Portal", PlatformID: sw.ID})
	if err != nil {
		t.Fatalf("same name, different platform: %v", err)
	}
	if game.Platform == nil || game.Platform.ID != sw.ID {
		t.Errorf("platform = %+v, want %d", game.Platform, sw.ID)
	}
	if game.Completed {
		t.Error("completed should default to false")
	}
}

func TestGameCreatePropagatesLookupFailures(t *testing.T) {
	platforms, games := newCatalogs(t)
	pc := mustCreatePlatform(t, platforms, "PC")

	// A failing duplicate lookup must abort the create, not fall through
	// to the insert as if no duplicate existed.
	if err := games.db.Exec("DROP TABLE games").Error; err != nil {
		t.Fatalf("drop table: %v", err)
	}

	_, err := games.Create(&dto.CreateGameRequest{Name: "Portal", PlatformID: pc.ID})
	if err == nil {
		t.Fatal("create on a broken store succeeded")
	}
	if errors.Is(err, ErrGameExists) || errors.Is(err, ErrPlatformNotFound) {
		t.Errorf("store failure surfaced as a business error: %v", err)
	}
}

func TestGameCreateUnknownPlatform(t *testing.T) {
	_, games := newCatalogs(t)

	if _, err := games.Create(&dto.CreateGameRequest{Name: "Portal", PlatformID: 42}); !errors.Is(err, ErrPlatformNotFound) {
		t.Errorf("got %v, want ErrPlatformNotFound", err)
	}
}

func TestGameDuplicateCheckIncludesSoftDeletedRows(t *testing.T) {
	platforms, games := newCatalogs(t)
	pc := mustCreatePlatform(t, platforms, "PC")

	game := mustCreateGame(t, games, "Portal", pc.ID, false)
	if _, err := games.Remove(game.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if _, err := games.Create(&dto.CreateGameRequest{Name: "portal", PlatformID: pc.ID}); !errors.Is(err, ErrGameExists) {
		t.Errorf("got %v, want ErrGameExists", err)
	}
}

func TestFindAllPagination(t *testing.T) {
	platforms, games := newCatalogs(t)
	pc := mustCreatePlatform(t, platforms, "PC")

	names := []string{"Portal", "Half-Life", "Doom", "Quake", "Hades"}
	for _, name := range names {
		mustCreateGame(t, games, name, pc.ID, false)
	}

	page1, err := games.FindAll(1, 2)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if page1.Meta.Total != 5 {
		t.Errorf("total = %d, want 5", page1.Meta.Total)
	}
	if page1.Meta.TotalPages != 3 {
		t.Errorf("totalPages = %d, want ceil(5/2)=3", page1.Meta.TotalPages)
	}
	if len(page1.Data) != 2 {
		t.Errorf("page 1 len = %d, want 2", len(page1.Data))
	}

	page3, err := games.FindAll(3, 2)
	if err != nil {
		t.Fatalf("find all page 3: %v", err)
	}
	if len(page3.Data) != 1 {
		t.Errorf("page 3 len = %d, want 1", len(page3.Data))
	}

	// Past the last page: empty data, still-accurate total.
	page9, err := games.FindAll(9, 2)
	if err != nil {
		t.Fatalf("find all page 9: %v", err)
	}
	if len(page9.Data) != 0 {
		t.Errorf("page 9 len = %d, want 0", len(page9.Data))
	}
	if page9.Meta.Total != 5 {
		t.Errorf("page 9 total = %d, want 5", page9.Meta.Total)
	}
}

func TestSoftDeletedGamesDisappearFromQueries(t *testing.T) {
	platforms, games := newCatalogs(t)
	pc := mustCreatePlatform(t, platforms, "PC")

	game := mustCreateGame(t, games, "Portal", pc.ID, false)
	if _, err := games.Remove(game.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if _, err := games.FindOne(game.ID); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("findOne: got %v, want ErrGameNotFound", err)
	}

	all, err := games.FindAll(1, 10)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(all.Data) != 0 || all.Meta.Total != 0 {
		t.Errorf("soft-deleted game still listed: %+v", all)
	}

	name := "port"
	found, err := games.Search(&dto.SearchFilters{Name: &name}, 1, 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(found.Data) != 0 {
		t.Errorf("soft-deleted game still searchable")
	}

	if _, err := games.Pick(); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("pick: got %v, want ErrGameNotFound", err)
	}

	// The row itself is retained.
	var count int64
	if err := games.db.Table("games").Where("id = ?", game.ID).Count(&count).Error; err != nil {
		t.Fatalf("count raw rows: %v", err)
	}
	if count != 1 {
		t.Errorf("soft delete removed the row")
	}
}

func TestSearchFilters(t *testing.T) {
	platforms, games := newCatalogs(t)
	pc := mustCreatePlatform(t, platforms, "PC")
	sw := mustCreatePlatform(t, platforms, "Switch")

	mustCreateGame(t, games, "Portal", pc.ID, false)
	mustCreateGame(t, games, "Hades", sw.ID, true)

	name := "port"
	byName, err := games.Search(&dto.SearchFilters{Name: &name}, 1, 10)
	if err != nil {
		t.Fatalf("search by name: %v", err)
	}
	if len(byName.Data) != 1 || byName.Data[0].Name != "Portal" {
		t.Errorf("search(name=port) = %+v, want exactly Portal", byName.Data)
	}

	completed := true
	byCompleted, err := games.Search(&dto.SearchFilters{Completed: &completed}, 1, 10)
	if err != nil {
		t.Fatalf("search by completed: %v", err)
	}
	if len(byCompleted.Data) != 1 || byCompleted.Data[0].Name != "Hades" {
		t.Errorf("search(completed=true) = %+v, want exactly Hades", byCompleted.Data)
	}

	byPlatform, err := games.Search(&dto.SearchFilters{PlatformID: &sw.ID}, 1, 10)
	if err != nil {
		t.Fatalf("search by platform: %v", err)
	}
	if len(byPlatform.Data) != 1 || byPlatform.Data[0].Name != "Hades" {
		t.Errorf("search(platformId) = %+v, want exactly Hades", byPlatform.Data)
	}

	// No filters: everything active.
	everything, err := games.Search(&dto.SearchFilters{}, 1, 10)
	if err != nil {
		t.Fatalf("search without filters: %v", err)
	}
	if len(everything.Data) != 2 {
		t.Errorf("unfiltered search len = %d, want 2", len(everything.Data))
	}
}

func TestPickEligibility(t *testing.T) {
	platforms, games := newCatalogs(t)
	pc := mustCreatePlatform(t, platforms, "PC")

	game := mustCreateGame(t, games, "Portal", pc.ID, false)

	picked, err := games.Pick()
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if picked.Name != "Portal" {
		t.Errorf("picked %q, want the only eligible game", picked.Name)
	}
	if picked.Platform == nil {
		t.Error("pick should include the platform")
	}

	completed := true
	if _, err := games.Update(game.ID, &dto.UpdateGameRequest{Completed: &completed}); err != nil {
		t.Fatalf("mark completed: %v", err)
	}

	if _, err := games.Pick(); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("pick after completion: got %v, want ErrGameNotFound", err)
	}
}

func TestGameUpdateReassignsPlatform(t *testing.T) {
	platforms, games := newCatalogs(t)
	pc := mustCreatePlatform(t, platforms, "PC")
	sw := mustCreatePlatform(t, platforms, "Switch")

	game := mustCreateGame(t, games, "Portal", pc.ID, false)

	updated, err := games.Update(game.ID, &dto.UpdateGameRequest{PlatformID: &sw.ID})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PlatformID == nil || *updated.PlatformID != sw.ID {
		t.Errorf("platformId = %v, want %d", updated.PlatformID, sw.ID)
	}

	bogus := uint(9999)
	if _, err := games.Update(game.ID, &dto.UpdateGameRequest{PlatformID: &bogus}); !errors.Is(err, ErrPlatformNotFound) {
		t.Errorf("got %v, want ErrPlatformNotFound", err)
	}

	if _, err := games.Update(4242, &dto.UpdateGameRequest{}); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("got %v, want ErrGameNotFound", err)
	}
}
