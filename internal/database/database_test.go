package database

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jask/mlshowcase/internal/catalog"
	"github.com/jask/mlshowcase/internal/database/repository"
)

func testDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "nested", "catalog.db")
}

func catalogTitles(c *catalog.Catalog) string {
	var parts []string
	for _, p := range c.Projects() {
		parts = append(parts, p.Title)
		for _, d := range p.Demos {
			parts = append(parts, "  "+d.Title)
		}
	}
	return strings.Join(parts, "\n")
}

func TestBootstrapMemoryMatchesDefaults(t *testing.T) {
	ctx := context.Background()
	got, err := Bootstrap(ctx, MemoryPath)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	want := catalog.Default()
	if catalogTitles(got) != catalogTitles(want) {
		t.Fatalf("loaded catalog differs:\n%s\nwant:\n%s", catalogTitles(got), catalogTitles(want))
	}
	p, _ := got.Project("object-tracking")
	d := p.Demos[1]
	if d.Stats != (catalog.Stats{Accuracy: 92, Speed: 90, Implementation: 75}) {
		t.Fatalf("stats = %+v", d.Stats)
	}
	if strings.Join(d.Features, ",") != "Speed Measurement,Trajectory Prediction,Spin Analysis" {
		t.Fatalf("features = %v", d.Features)
	}
	if strings.Join(p.Technologies, ",") != "Neural Networks,Computer Vision,Real-time Processing" {
		t.Fatalf("technologies = %v", p.Technologies)
	}
	if strings.Join(p.Applications, ",") != "Sports Analysis,Performance Tracking,Training Optimization" {
		t.Fatalf("applications = %v", p.Applications)
	}
}

func TestBootstrapFileIsIdempotentAndKeepsEdits(t *testing.T) {
	ctx := context.Background()
	path := testDB(t)
	if _, err := Bootstrap(ctx, path); err != nil {
		t.Fatalf("first bootstrap: %v", err)
	}

	db, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	repo := repository.NewProjectRepo(db)
	row, err := repo.Get(ctx, "lip-reader")
	if err != nil || row == nil {
		t.Fatalf("get lip-reader: %v %v", row, err)
	}
	row.Title = "Lip Reader (edited)"
	if err := repo.Upsert(ctx, *row); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	db.Close()

	cat, err := Bootstrap(ctx, path)
	if err != nil {
		t.Fatalf("second bootstrap: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("reseeding duplicated projects: %d", cat.Len())
	}
	p, _ := cat.Project("lip-reader")
	if p.Title != "Lip Reader (edited)" {
		t.Fatalf("seed overwrote edit: %q", p.Title)
	}
	if len(p.Technologies) != 3 || len(p.Applications) != 3 {
		t.Fatalf("tags lost on upsert: %v %v", p.Technologies, p.Applications)
	}
}

func TestSeedFailureLeavesStoreEmpty(t *testing.T) {
	ctx := context.Background()
	path := testDB(t)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	db, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := RunMigrations(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// fail on the second project's last demo, after earlier rows were written
	if _, err := db.ExecContext(ctx, `
	CREATE TRIGGER fail_seed BEFORE INSERT ON demos
	WHEN NEW.project_id = 'lip-reader' AND NEW.number = 3
	BEGIN SELECT RAISE(ABORT, 'disk full'); END;`); err != nil {
		t.Fatalf("create trigger: %v", err)
	}
	if err := SeedDefaults(ctx, db, catalog.Default()); err == nil {
		t.Fatalf("expected seed failure")
	}
	n, err := repository.NewProjectRepo(db).Count(ctx)
	if err != nil || n != 0 {
		t.Fatalf("partial seed left %d projects (err %v)", n, err)
	}
	if _, err := db.ExecContext(ctx, `DROP TRIGGER fail_seed`); err != nil {
		t.Fatalf("drop trigger: %v", err)
	}
	db.Close()

	cat, err := Bootstrap(ctx, path)
	if err != nil {
		t.Fatalf("bootstrap after failed seed: %v", err)
	}
	p, ok := cat.Project("lip-reader")
	if !ok || len(p.Demos) != 3 {
		t.Fatalf("reseed incomplete: %v %+v", ok, p)
	}
}

func TestProjectGetMissing(t *testing.T) {
	db, err := Open(MemoryPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	if err := RunMigrations(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := RunMigrations(db); err != nil {
		t.Fatalf("second migrate should be a no-op: %v", err)
	}
	row, err := repository.NewProjectRepo(db).Get(context.Background(), "nope")
	if err != nil || row != nil {
		t.Fatalf("expected nil, nil; got %v, %v", row, err)
	}
}

func TestSchemaRejectsOutOfRangeStats(t *testing.T) {
	ctx := context.Background()
	db, err := Open(MemoryPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	if err := RunMigrations(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := repository.NewProjectRepo(db).Upsert(ctx, repository.Project{ID: "p", Title: "P"}); err != nil {
		t.Fatalf("upsert project: %v", err)
	}
	err = repository.NewDemoRepo(db).Upsert(ctx, repository.Demo{
		ID: DemoRowID("p", 1), ProjectID: "p", Number: 1, Title: "D",
		Media: "x.mp4", MediaKind: "video", Accuracy: 101,
	})
	if err == nil {
		t.Fatalf("expected check constraint failure")
	}
}

func TestDemoRowIDIsStable(t *testing.T) {
	a := DemoRowID("object-tracking", 2)
	if a != DemoRowID("object-tracking", 2) {
		t.Fatalf("row id not deterministic")
	}
	if a == DemoRowID("lip-reader", 2) || a == DemoRowID("object-tracking", 3) {
		t.Fatalf("row ids collide")
	}
}
