package drive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/mishpatech/lawdocs-backend/internal/pkg/logger"
)

const folderMimeType = "application/vnd.google-apps.folder"

// Client wraps the Drive v3 surface the submission flow needs.
type Client interface {
	FindFolder(ctx context.Context, name, parentID string) (string, bool, error)
	CreateFolder(ctx context.Context, name, parentID string) (string, error)
	UploadFile(ctx context.Context, parentID, name, mimeType string, r io.Reader) (string, error)
}

type client struct {
	log *logger.Logger
	svc *gdrive.Service
}

func NewClient(ctx context.Context, log *logger.Logger) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	opts, err := clientOptionsFromEnv()
	if err != nil {
		return nil, err
	}
	opts = append(opts, option.WithScopes(gdrive.DriveScope))
	svc, err := gdrive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}
	return &client{
		log: log.With("service", "DriveClient"),
		svc: svc,
	}, nil
}

// clientOptionsFromEnv prefers standard credentials vars, falling back to the
// split GOOGLE_SERVICE_ACCOUNT_EMAIL / GOOGLE_PRIVATE_KEY pair assembled into
// a service-account JSON blob.
func clientOptionsFromEnv() ([]option.ClientOption, error) {
	creds := strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON"))
	if creds == "" {
		creds = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}
	if creds != "" {
		if strings.HasPrefix(creds, "{") {
			return []option.ClientOption{option.WithCredentialsJSON([]byte(creds))}, nil
		}
		return []option.ClientOption{option.WithCredentialsFile(creds)}, nil
	}

	email := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_EMAIL"))
	key := os.Getenv("GOOGLE_PRIVATE_KEY")
	if email == "" || strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("missing Google credentials: set GOOGLE_APPLICATION_CREDENTIALS[_JSON] or GOOGLE_SERVICE_ACCOUNT_EMAIL + GOOGLE_PRIVATE_KEY")
	}
	// Env transports often mangle newlines in the PEM block.
	key = strings.ReplaceAll(key, `\n`, "\n")
	blob, err := json.Marshal(map[string]string{
		"type":         "service_account",
		"client_email": email,
		"private_key":  key,
		"token_uri":    "https://oauth2.googleapis.com/token",
	})
	if err != nil {
		return nil, err
	}
	return []option.ClientOption{option.WithCredentialsJSON(blob)}, nil
}

func (c *client) FindFolder(ctx context.Context, name, parentID string) (string, bool, error) {
	q := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false", escapeQuery(name), folderMimeType)
	if parentID != "" {
		q += fmt.Sprintf(" and '%s' in parents", escapeQuery(parentID))
	}
	res, err := c.svc.Files.List().
		Q(q).
		Fields("files(id, name)").
		PageSize(5).
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return "", false, fmt.Errorf("list folders: %w", err)
	}
	if len(res.Files) == 0 {
		return "", false, nil
	}
	return res.Files[0].Id, true, nil
}

func (c *client) CreateFolder(ctx context.Context, name, parentID string) (string, error) {
	f := &gdrive.File{
		Name:     name,
		MimeType: folderMimeType,
	}
	if parentID != "" {
		f.Parents = []string{parentID}
	}
	created, err := c.svc.Files.Create(f).
		Fields("id").
		SupportsAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("create folder %q: %w", name, err)
	}
	c.log.Info("created drive folder", "name", name, "id", created.Id)
	return created.Id, nil
}

func (c *client) UploadFile(ctx context.Context, parentID, name, mimeType string, r io.Reader) (string, error) {
	f := &gdrive.File{
		Name:     name,
		MimeType: mimeType,
	}
	if parentID != "" {
		f.Parents = []string{parentID}
	}
	created, err := c.svc.Files.Create(f).
		Media(r).
		Fields("id").
		SupportsAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("upload %q: %w", name, err)
	}
	return created.Id, nil
}

// escapeQuery makes a folder name safe inside a single-quoted Drive query
// term. Backslashes go first so the quote escapes stay intact.
func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "'", `\'`)
}
