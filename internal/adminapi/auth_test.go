package adminapi

import "testing"

func TestGateUnlocks(t *testing.T) {
	const secret = "GreenBlue2024"

	if !gateUnlocks("GreenBlue2024", secret) {
		t.Fatal("exact password must unlock the gate")
	}
	for _, bad := range []string{"", "greenblue2024", "GreenBlue2024 ", "GreenBlue2023", "GreenBlue20244"} {
		if gateUnlocks(bad, secret) {
			t.Errorf("password %q must not unlock the gate", bad)
		}
	}
}

func TestGateNeverUnlocksWithEmptySecret(t *testing.T) {
	if gateUnlocks("", "") {
		t.Fatal("an empty secret must keep the gate locked")
	}
	if gateUnlocks("anything", "") {
		t.Fatal("an empty secret must keep the gate locked")
	}
}
