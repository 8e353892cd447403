package models

import "testing"

func boolPtr(b bool) *bool { return &b }

func TestOpenHoursNormalized(t *testing.T) {
	hours := OpenHours{
		"monday":  {Enabled: boolPtr(true), Open: "08:00", Close: "20:00"},
		"tuesday": {Enabled: boolPtr(false), Open: "08:00", Close: "20:00"},
		// record lama tanpa flag enabled: jam terisi berarti buka
		"wednesday": {Open: "10:00", Close: "22:00"},
	}

	norm := hours.Normalized()
	if len(norm) != 7 {
		t.Fatalf("expected all 7 days, got %d", len(norm))
	}

	if d := norm["monday"]; !d.Enabled || d.Open != "08:00" || d.Close != "20:00" {
		t.Errorf("monday = %+v", d)
	}
	if d := norm["tuesday"]; d.Enabled {
		t.Errorf("tuesday should stay disabled when flag is explicit false: %+v", d)
	}
	if d := norm["wednesday"]; !d.Enabled || d.Open != "10:00" {
		t.Errorf("wednesday should infer enabled from filled hours: %+v", d)
	}

	// hari yang tidak ada sama sekali: tutup dengan jam default
	if d := norm["sunday"]; d.Enabled || d.Open != "09:00" || d.Close != "17:30" {
		t.Errorf("sunday = %+v, want disabled 09:00-17:30", d)
	}
}

func TestOpenHoursSetSchedule(t *testing.T) {
	hours := OpenHours{}
	hours.SetSchedule("friday", true, "11:00", "23:00")

	day := hours["friday"]
	if day.Enabled == nil || !*day.Enabled || day.Open != "11:00" || day.Close != "23:00" {
		t.Errorf("friday = %+v", day)
	}
}

func TestOpenHoursValueScan(t *testing.T) {
	hours := OpenHours{
		"monday": {Enabled: boolPtr(true), Open: "09:00", Close: "17:30"},
	}

	raw, err := hours.Value()
	if err != nil {
		t.Fatal(err)
	}

	var decoded OpenHours
	if err := decoded.Scan(raw); err != nil {
		t.Fatal(err)
	}

	day := decoded["monday"]
	if day.Enabled == nil || !*day.Enabled || day.Open != "09:00" {
		t.Errorf("roundtrip lost data: %+v", day)
	}

	var fromNil OpenHours
	if err := fromNil.Scan(nil); err != nil {
		t.Fatal(err)
	}
	if fromNil == nil {
		t.Error("scanning nil should produce an empty map")
	}
}

func TestAreaList(t *testing.T) {
	r := Restaurant{DeliveryAreas: "Makati, Taguig ,,Pasig"}

	areas := r.AreaList()
	if len(areas) != 3 || areas[0] != "Makati" || areas[1] != "Taguig" || areas[2] != "Pasig" {
		t.Errorf("AreaList = %v", areas)
	}

	empty := Restaurant{}
	if empty.AreaList() != nil {
		t.Error("empty DeliveryAreas should give nil list")
	}
}

func TestSetAreaList(t *testing.T) {
	r := Restaurant{}
	r.SetAreaList(" Makati , , Pasig ")
	if r.DeliveryAreas != "Makati,Pasig" {
		t.Errorf("DeliveryAreas = %q", r.DeliveryAreas)
	}
}
