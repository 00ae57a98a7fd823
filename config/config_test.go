package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGoalsFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"GOAL_CALORIES", "GOAL_PROTEIN", "GOAL_CARBS", "GOAL_FAT", "GOAL_FIBER", "GOAL_SUGAR"} {
		t.Setenv(k, "")
	}

	if got := GoalsFromEnv(); got != DefaultGoals {
		t.Fatalf("GoalsFromEnv() = %+v, want %+v", got, DefaultGoals)
	}
}

func TestGoalsFromEnv_Overrides(t *testing.T) {
	t.Setenv("GOAL_CALORIES", "1800")
	t.Setenv("GOAL_FIBER", "35.5")
	t.Setenv("GOAL_SUGAR", "not-a-number")
	t.Setenv("GOAL_FAT", "-4")

	got := GoalsFromEnv()
	if got.Calories != 1800 {
		t.Errorf("Calories = %v, want 1800", got.Calories)
	}
	if got.Fiber != 35.5 {
		t.Errorf("Fiber = %v, want 35.5", got.Fiber)
	}
	if got.Sugar != DefaultGoals.Sugar {
		t.Errorf("Sugar = %v, want default %v", got.Sugar, DefaultGoals.Sugar)
	}
	if got.Fat != DefaultGoals.Fat {
		t.Errorf("Fat = %v, want default %v", got.Fat, DefaultGoals.Fat)
	}
}

func TestLoadFoodCatalog_EmptyPathUsesDefault(t *testing.T) {
	foods, err := LoadFoodCatalog("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(foods) != 10 {
		t.Fatalf("len = %d, want 10", len(foods))
	}
	if foods[0].Name != "Grilled Chicken Breast" || foods[0].Protein != 31 {
		t.Errorf("first entry = %+v", foods[0])
	}
}

func TestLoadFoodCatalog_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	data := `
[[foods]]
name = "Peanut Butter Toast"
calories = 290
protein = 11
carbs = 28
fat = 16
fiber = 4
sugar = 5

[[foods]]
name = "Apple"
calories = 95
fiber = 4.4
sugar = 19
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	foods, err := LoadFoodCatalog(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(foods) != 2 {
		t.Fatalf("len = %d, want 2", len(foods))
	}
	if foods[0].Name != "Peanut Butter Toast" || foods[0].Fat != 16 {
		t.Errorf("foods[0] = %+v", foods[0])
	}
	if foods[1].Protein != 0 || foods[1].Sugar != 19 {
		t.Errorf("foods[1] = %+v, missing keys should default to 0", foods[1])
	}
}

func TestLoadFoodCatalog_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFoodCatalog(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}

	empty := filepath.Join(dir, "empty.toml")
	if err := os.WriteFile(empty, []byte("# nothing\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFoodCatalog(empty); err == nil {
		t.Error("expected error for catalog without foods")
	}

	noName := filepath.Join(dir, "noname.toml")
	if err := os.WriteFile(noName, []byte("[[foods]]\ncalories = 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFoodCatalog(noName); err == nil {
		t.Error("expected error for entry without name")
	}
}

func TestInitDB_SQLite(t *testing.T) {
	cfg := Config{DBDriver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "test.db")}

	db, err := InitDB(cfg)
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	for _, table := range []string{"users", "meals", "meal_foods", "daily_progresses", "alerts", "nutrient_references"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("table %s not migrated", table)
		}
	}
}

func TestInitDB_UnknownDriver(t *testing.T) {
	if _, err := InitDB(Config{DBDriver: "mysql"}); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestDSN(t *testing.T) {
	cfg := Config{DBHost: "db", DBUser: "u", DBPassword: "p", DBName: "n", DBPort: "5432", DBSSLMode: "disable"}
	want := "host=db user=u password=p dbname=n port=5432 sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
