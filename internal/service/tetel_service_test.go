package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/DraymeM/tiomi/internal/dto"
	"github.com/DraymeM/tiomi/internal/repository"
)

func setupTestTetelService() (TetelService, *mockTetelRepo) {
	tetelRepo := newMockTetelRepo()
	repo := &repository.Repository{User: newMockUserRepo(), Tetel: tetelRepo}
	return NewTetelService(repo, zap.NewNop()), tetelRepo
}

func createTestTetel(t *testing.T, svc TetelService) *dto.TetelRef {
	t.Helper()
	ref, err := svc.Create(context.Background(), &dto.CreateTetelRequest{
		Name: "Hálózatok",
		Sections: []dto.SectionInput{
			{
				Content: "## OSI modell\n\nA hét réteg.",
				Subsections: []dto.SubsectionInput{
					{Title: "Fizikai réteg", Description: "Bitek átvitele."},
				},
			},
			{Content: "## TCP/IP"},
		},
		Osszegzes: "A hálózati rétegek összefoglalása.",
	})
	if err != nil {
		t.Fatalf("Create should succeed, got %v", err)
	}
	return ref
}

func TestTetelCreate_AndGetDetails(t *testing.T) {
	svc, _ := setupTestTetelService()
	ref := createTestTetel(t, svc)

	details, err := svc.GetDetails(context.Background(), ref.ID)
	if err != nil {
		t.Fatalf("GetDetails should succeed, got %v", err)
	}
	if details.Tetel.Name != "Hálózatok" {
		t.Errorf("expected name=Hálózatok, got %s", details.Tetel.Name)
	}
	if len(details.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(details.Sections))
	}
	if len(details.Sections[0].Subsections) != 1 {
		t.Errorf("expected 1 subsection in first section, got %d", len(details.Sections[0].Subsections))
	}
	if details.Osszegzes == nil {
		t.Fatal("expected a summary")
	}
	if details.ReadingMinutes < 1 {
		t.Errorf("non-empty content should yield at least 1 minute, got %d", details.ReadingMinutes)
	}
}

func TestTetelGetDetails_NotFound(t *testing.T) {
	svc, _ := setupTestTetelService()

	if _, err := svc.GetDetails(context.Background(), 9999); !errors.Is(err, ErrTetelNotFound) {
		t.Errorf("expected ErrTetelNotFound, got %v", err)
	}
}

func TestTetelGetDetails_NoSummary(t *testing.T) {
	svc, _ := setupTestTetelService()

	ref, err := svc.Create(context.Background(), &dto.CreateTetelRequest{
		Name:     "Rövid tétel",
		Sections: []dto.SectionInput{{Content: "Csak egy szakasz."}},
	})
	if err != nil {
		t.Fatalf("Create should succeed, got %v", err)
	}

	details, err := svc.GetDetails(context.Background(), ref.ID)
	if err != nil {
		t.Fatalf("GetDetails should succeed, got %v", err)
	}
	if details.Osszegzes != nil {
		t.Error("absent summary should stay absent, not become an error or empty object")
	}
}

func TestTetelReadingMinutes_CeilingBehavior(t *testing.T) {
	svc, _ := setupTestTetelService()

	longContent := strings.TrimSpace(strings.Repeat("szó ", 201))
	ref, err := svc.Create(context.Background(), &dto.CreateTetelRequest{
		Name:     "Hosszú",
		Sections: []dto.SectionInput{{Content: longContent}},
	})
	if err != nil {
		t.Fatalf("Create should succeed, got %v", err)
	}

	details, err := svc.GetDetails(context.Background(), ref.ID)
	if err != nil {
		t.Fatalf("GetDetails should succeed, got %v", err)
	}
	// name contributes nothing to the estimate; 201 words round up to 2
	if details.ReadingMinutes != 2 {
		t.Errorf("expected 2 minutes for 201 words, got %d", details.ReadingMinutes)
	}
}

func TestTetelList(t *testing.T) {
	svc, _ := setupTestTetelService()
	createTestTetel(t, svc)

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List should succeed, got %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 item, got %d", len(list))
	}
	if list[0].SectionCount != 2 {
		t.Errorf("expected section_count=2, got %d", list[0].SectionCount)
	}
}

func TestTetelUpdate_ReplacesContent(t *testing.T) {
	svc, _ := setupTestTetelService()
	ref := createTestTetel(t, svc)

	err := svc.Update(context.Background(), ref.ID, &dto.UpdateTetelRequest{
		Name:     "Hálózatok (javítva)",
		Sections: []dto.SectionInput{{Content: "Egyetlen új szakasz."}},
	})
	if err != nil {
		t.Fatalf("Update should succeed, got %v", err)
	}

	details, _ := svc.GetDetails(context.Background(), ref.ID)
	if details.Tetel.Name != "Hálózatok (javítva)" {
		t.Errorf("expected updated name, got %s", details.Tetel.Name)
	}
	if len(details.Sections) != 1 {
		t.Errorf("expected content tree replaced, got %d sections", len(details.Sections))
	}
	if details.Osszegzes != nil {
		t.Error("summary should be gone after replacement without one")
	}
}

func TestTetelUpdate_NotFound(t *testing.T) {
	svc, _ := setupTestTetelService()

	err := svc.Update(context.Background(), 9999, &dto.UpdateTetelRequest{
		Name:     "X",
		Sections: []dto.SectionInput{{Content: "Y"}},
	})
	if !errors.Is(err, ErrTetelNotFound) {
		t.Errorf("expected ErrTetelNotFound, got %v", err)
	}
}

func TestTetelDelete(t *testing.T) {
	svc, _ := setupTestTetelService()
	ref := createTestTetel(t, svc)

	if err := svc.Delete(context.Background(), ref.ID); err != nil {
		t.Fatalf("Delete should succeed, got %v", err)
	}
	if _, err := svc.GetDetails(context.Background(), ref.ID); !errors.Is(err, ErrTetelNotFound) {
		t.Errorf("expected ErrTetelNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), ref.ID); !errors.Is(err, ErrTetelNotFound) {
		t.Errorf("expected ErrTetelNotFound for a second delete, got %v", err)
	}
}
