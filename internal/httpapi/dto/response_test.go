package dto

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/daltekdz/daltekdz_bot/internal/featured"
	"github.com/daltekdz/daltekdz_bot/internal/model"
)

func TestCopyList_Stores(t *testing.T) {
	created := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	stores := []*model.Store{{
		ID:         1,
		Name:       "Salon Yasmine",
		WilayaCode: 16,
		WilayaName: "Alger",
		Plan:       model.StorePlanGold,
		Status:     model.StoreStatusActive,
		Rating:     4.7,
		CreatedAt:  created,
	}}

	got, err := CopyList[StoreResponse](stores)
	require.NoError(t, err)

	want := []StoreResponse{{
		ID:         1,
		Name:       "Salon Yasmine",
		WilayaCode: 16,
		WilayaName: "Alger",
		Plan:       model.StorePlanGold,
		Status:     model.StoreStatusActive,
		Rating:     4.7,
		CreatedAt:  created,
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stores mismatch (-want +got):\n%s", diff)
	}
}

func TestCopyList_EmptyIsNotNil(t *testing.T) {
	got, err := CopyList[ServiceResponse]([]*model.Service{})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestCopyOne_FeaturedFlattensEmbedded(t *testing.T) {
	id := uuid.New()
	end := time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)
	entry := featured.Entry{
		FeaturedStore: model.FeaturedStore{ID: id, StoreID: 2, EndDate: end, IsActive: true},
		StoreName:     "Salon Yasmine",
		DaysRemaining: 7,
	}

	got, err := CopyOne[FeaturedResponse](&entry)
	require.NoError(t, err)

	want := &FeaturedResponse{ID: id, StoreID: 2, StoreName: "Salon Yasmine", EndDate: end, IsActive: true, DaysRemaining: 7}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("featured mismatch (-want +got):\n%s", diff)
	}
}
