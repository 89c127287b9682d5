package models

import "testing"

func TestMaskRole_ReplaceInput(t *testing.T) {
	in := ReplacePatientInput{Role: RoleAdmin}
	MaskRole(RolePatient, &in)
	if in.Role != "" {
		t.Errorf("non-admin payload kept role %q", in.Role)
	}

	in = ReplacePatientInput{Role: RoleAdmin}
	MaskRole(RoleAdmin, &in)
	if in.Role != RoleAdmin {
		t.Error("admin record should keep the submitted role")
	}
}

func TestMaskRole_UpdateInput(t *testing.T) {
	role := RoleAdmin
	in := UpdatePatientInput{Role: &role}
	MaskRole(RolePatient, &in)
	if in.Role != nil {
		t.Errorf("non-admin payload kept role %q", *in.Role)
	}

	role = RoleAdmin
	in = UpdatePatientInput{Role: &role}
	MaskRole(RoleAdmin, &in)
	if in.Role == nil || *in.Role != RoleAdmin {
		t.Error("admin record should keep the submitted role")
	}
}

func TestMaskRole_SpecialistInputs(t *testing.T) {
	rin := ReplaceSpecialistInput{Role: RoleAdmin}
	MaskRole(RoleSpecialist, &rin)
	if rin.Role != "" {
		t.Errorf("non-admin payload kept role %q", rin.Role)
	}

	role := RoleAdmin
	uin := UpdateSpecialistInput{Role: &role}
	MaskRole(RoleSpecialist, &uin)
	if uin.Role != nil {
		t.Errorf("non-admin payload kept role %q", *uin.Role)
	}
}

func TestReplacement_RoleFallsBackToCurrent(t *testing.T) {
	cur := validCreateInput()
	current := cur.NewPatient()
	current.Role = RoleAdmin

	in := ReplacePatientInput{
		Name:     "X",
		CPF:      "11122233344",
		Birthday: "1990-01-01",
		Phone:    "11900000000",
		Address:  "a",
		City:     "b",
		State:    "c",
	}
	if next := in.Replacement(current); next.Role != RoleAdmin {
		t.Errorf("omitted role must keep the stored role, got %q", next.Role)
	}

	in.Role = RolePatient
	if next := in.Replacement(current); next.Role != RolePatient {
		t.Errorf("surviving role must win, got %q", next.Role)
	}
}
