package backend

import (
	"context"
	"io"

	"github.com/lafoolehh-stack/SomaliPin-V1/client"
	"github.com/lafoolehh-stack/SomaliPin-V1/internal/domain"
)

// Supabase adapts the Supabase REST client to the backend ports. It
// serves both the dossiers table and the image bucket.
type Supabase struct {
	client *client.Client
	bucket string
}

func NewSupabase(cl *client.Client, bucket string) *Supabase {
	return &Supabase{
		client: cl,
		bucket: bucket,
	}
}

func (s *Supabase) FetchAll(ctx context.Context) ([]domain.Dossier, error) {
	return s.client.SelectDossiers(ctx)
}

func (s *Supabase) Insert(ctx context.Context, input domain.DossierInput) error {
	return s.client.InsertDossier(ctx, input)
}

func (s *Supabase) Update(ctx context.Context, id string, input domain.DossierInput) error {
	return s.client.UpdateDossier(ctx, id, input)
}

func (s *Supabase) Delete(ctx context.Context, id string) error {
	return s.client.DeleteDossier(ctx, id)
}

func (s *Supabase) Upload(ctx context.Context, key, contentType string, body io.Reader) error {
	return s.client.UploadObject(ctx, s.bucket, key, contentType, body)
}

func (s *Supabase) PublicURL(key string) string {
	return s.client.PublicObjectURL(s.bucket, key)
}
