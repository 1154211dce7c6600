package department

import "testing"

func TestCodeFor(t *testing.T) {
	code, ok := CodeFor("Computer Science and Engineering")
	if !ok || code != "CS" {
		t.Errorf("CodeFor(CS dept) = %q, %v", code, ok)
	}
	if _, ok := CodeFor("Basket Weaving"); ok {
		t.Error("expected unknown department to miss")
	}
}

func TestNameForCodeRoundTrip(t *testing.T) {
	for _, d := range All() {
		name, ok := NameForCode(d.Code)
		if !ok || name != d.Name {
			t.Errorf("NameForCode(%q) = %q, %v; want %q", d.Code, name, ok, d.Name)
		}
	}
	if _, ok := NameForCode("XX"); ok {
		t.Error("expected unknown code to miss")
	}
}

func TestDivisionFor(t *testing.T) {
	div, ok := DivisionFor("Computer Science and Engineering")
	if !ok || div != "D3" {
		t.Errorf("DivisionFor(CS dept) = %q, %v", div, ok)
	}
}

func TestIsSkipped(t *testing.T) {
	for _, name := range []string{"Physics", "Humanities and Social Sciences", "Centre for Liberal Education (CLEdu)"} {
		if !IsSkipped(name) {
			t.Errorf("expected %q to be skipped", name)
		}
	}
	if IsSkipped("Economics") {
		t.Error("Economics should not be skipped")
	}
}

func TestResolve(t *testing.T) {
	code, ok, err := Resolve("Economics")
	if err != nil || !ok || code != "EC" {
		t.Errorf("Resolve(Economics) = %q, %v, %v", code, ok, err)
	}

	// Skipped names are excluded without an error diagnostic.
	if _, ok, err := Resolve("Physics"); ok || err != nil {
		t.Errorf("Resolve(Physics) should silently exclude, got ok=%v err=%v", ok, err)
	}

	if _, _, err := Resolve("Basket Weaving"); err == nil {
		t.Error("expected diagnostic for unknown department")
	}
}

func TestAll(t *testing.T) {
	departments := All()
	if len(departments) != 14 {
		t.Fatalf("expected 14 departments, got %d", len(departments))
	}
	for i := 1; i < len(departments); i++ {
		if departments[i-1].Name > departments[i].Name {
			t.Fatalf("departments not sorted: %q before %q", departments[i-1].Name, departments[i].Name)
		}
	}
	for _, d := range departments {
		if len(d.Code) != 2 {
			t.Errorf("department %q has malformed code %q", d.Name, d.Code)
		}
	}
}
