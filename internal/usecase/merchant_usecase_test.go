package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/dangol-v2/deal-service/internal/domain"
	merchantdto "github.com/dangol-v2/deal-service/internal/usecase/dto/merchant"
)

func TestCreateMerchant(t *testing.T) {
	store := newMemStore()
	uc := NewDefaultMerchantUsecase(store, store)

	out, err := uc.CreateMerchant(&merchantdto.CreateMerchantInput{
		BusinessName: "  망원동 카페  ",
		Address:      "서울 마포구 망원동",
		Email:        "Owner@Example.COM",
		Latitude:     37.5556,
		Longitude:    126.9019,
	})
	if err != nil {
		t.Fatalf("CreateMerchant: %v", err)
	}
	if out.BusinessName != "망원동 카페" {
		t.Errorf("BusinessName = %q, want trimmed", out.BusinessName)
	}
	if out.Email != "owner@example.com" {
		t.Errorf("Email = %q, want lowercased", out.Email)
	}
	if out.ID == 0 {
		t.Error("ID not assigned")
	}
}

func TestCreateMerchantDuplicateEmail(t *testing.T) {
	store := newMemStore()
	uc := NewDefaultMerchantUsecase(store, store)

	first := merchantdto.CreateMerchantInput{
		BusinessName: "망원동 카페",
		Address:      "서울 마포구 망원동",
		Email:        "owner@example.com",
		Latitude:     37.5556,
		Longitude:    126.9019,
	}
	if _, err := uc.CreateMerchant(&first); err != nil {
		t.Fatalf("CreateMerchant: %v", err)
	}

	// The normalized email collides even when the casing differs.
	second := first
	second.BusinessName = "다른 가게"
	second.Email = "OWNER@example.com"
	if _, err := uc.CreateMerchant(&second); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("duplicate email: got %v, want ErrValidation", err)
	}

	// A blank email never collides with another blank email.
	for i := 0; i < 2; i++ {
		in := first
		in.Email = ""
		in.BusinessName = "무메일 가게"
		if _, err := uc.CreateMerchant(&in); err != nil {
			t.Fatalf("blank email merchant %d: %v", i, err)
		}
	}
}

func TestCreateMerchantValidation(t *testing.T) {
	store := newMemStore()
	uc := NewDefaultMerchantUsecase(store, store)

	tests := []struct {
		name  string
		input merchantdto.CreateMerchantInput
	}{
		{"blank name", merchantdto.CreateMerchantInput{Address: "a"}},
		{"blank address", merchantdto.CreateMerchantInput{BusinessName: "n"}},
		{"latitude out of range", merchantdto.CreateMerchantInput{BusinessName: "n", Address: "a", Latitude: 91}},
		{"longitude out of range", merchantdto.CreateMerchantInput{BusinessName: "n", Address: "a", Longitude: -181}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.CreateMerchant(&tt.input); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("got %v, want ErrValidation", err)
			}
		})
	}
}

func TestUpdateMerchantLocation(t *testing.T) {
	store := newMemStore()
	uc := NewDefaultMerchantUsecase(store, store)

	created, err := uc.CreateMerchant(&merchantdto.CreateMerchantInput{
		BusinessName: "가게", Address: "옛 주소", Latitude: 37.5, Longitude: 127.0,
	})
	if err != nil {
		t.Fatalf("CreateMerchant: %v", err)
	}

	out, err := uc.UpdateMerchantLocation(&merchantdto.UpdateMerchantLocationInput{
		MerchantID: created.ID, Latitude: 37.51, Longitude: 127.01, Address: "새 주소",
	})
	if err != nil {
		t.Fatalf("UpdateMerchantLocation: %v", err)
	}
	if out.Latitude != 37.51 || out.Longitude != 127.01 || out.Address != "새 주소" {
		t.Errorf("location not applied: %+v", out)
	}

	// Blank address keeps the old one.
	out, err = uc.UpdateMerchantLocation(&merchantdto.UpdateMerchantLocationInput{
		MerchantID: created.ID, Latitude: 37.52, Longitude: 127.02,
	})
	if err != nil {
		t.Fatalf("UpdateMerchantLocation: %v", err)
	}
	if out.Address != "새 주소" {
		t.Errorf("Address = %q, want previous address kept", out.Address)
	}
}

func TestUpdateMerchantLocationFrozenAfterClaims(t *testing.T) {
	store := newMemStore()
	uc := NewDefaultMerchantUsecase(store, store)

	created, err := uc.CreateMerchant(&merchantdto.CreateMerchantInput{
		BusinessName: "가게", Address: "주소", Latitude: 37.5, Longitude: 127.0,
	})
	if err != nil {
		t.Fatalf("CreateMerchant: %v", err)
	}

	deal := &domain.Deal{MerchantID: created.ID, Title: "t", ExpiresAt: time.Now().Add(time.Hour), MaxClaims: 5}
	if err := store.CreateDeal(deal); err != nil {
		t.Fatalf("create deal: %v", err)
	}
	err = store.Transaction(func(tx domain.ClaimTx) error {
		return tx.InsertClaim(&domain.Claim{DealID: deal.ID, DeviceID: "device-1", ClaimCode: "AAAAAA"})
	})
	if err != nil {
		t.Fatalf("insert claim: %v", err)
	}

	if _, err := uc.UpdateMerchantLocation(&merchantdto.UpdateMerchantLocationInput{
		MerchantID: created.ID, Latitude: 37.6, Longitude: 127.1,
	}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("location change with issued claims: got %v, want ErrValidation", err)
	}
}
