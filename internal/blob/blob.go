// Package blob stores generated documents and issues read-only links to
// them.
package blob

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/sas"
	"github.com/google/uuid"
)

// sasClockSkew backdates SAS start times.
const sasClockSkew = 5 * time.Minute

type Store interface {
	EnsureContainer(ctx context.Context) error
	Upload(ctx context.Context, name string, data []byte, contentType string) error
	ReadURL(name string, expiry time.Duration) (string, error)
}

// AzureStore is a Store backed by one Azure Blob Storage container.
type AzureStore struct {
	client    *azblob.Client
	cred      *azblob.SharedKeyCredential
	container string
}

// NewAzureStore accepts a standard storage account connection string
// (AccountName, AccountKey and either EndpointSuffix or BlobEndpoint).
func NewAzureStore(connectionString, container string) (*AzureStore, error) {
	cs, err := parseConnectionString(connectionString)
	if err != nil {
		return nil, err
	}
	cred, err := azblob.NewSharedKeyCredential(cs.accountName, cs.accountKey)
	if err != nil {
		return nil, fmt.Errorf("invalid storage credentials: %w", err)
	}
	client, err := azblob.NewClientWithSharedKeyCredential(cs.serviceURL, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client: %w", err)
	}
	return &AzureStore{client: client, cred: cred, container: container}, nil
}

func (s *AzureStore) EnsureContainer(ctx context.Context) error {
	_, err := s.client.CreateContainer(ctx, s.container, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return fmt.Errorf("failed to create container %s: %w", s.container, err)
	}
	return nil
}

func (s *AzureStore) Upload(ctx context.Context, name string, data []byte, contentType string) error {
	_, err := s.client.UploadBuffer(ctx, s.container, name, data, &azblob.UploadBufferOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: to.Ptr(contentType)},
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", name, err)
	}
	log.Printf("[Blob] Uploaded %s/%s (%d bytes)", s.container, name, len(data))
	return nil
}

// ReadURL signs a read-only, HTTPS-only link valid for expiry.
func (s *AzureStore) ReadURL(name string, expiry time.Duration) (string, error) {
	now := time.Now().UTC()
	qp, err := sas.BlobSignatureValues{
		Protocol:      sas.ProtocolHTTPS,
		StartTime:     now.Add(-sasClockSkew),
		ExpiryTime:    now.Add(expiry),
		Permissions:   (&sas.BlobPermissions{Read: true}).String(),
		ContainerName: s.container,
		BlobName:      name,
	}.SignWithSharedKey(s.cred)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s: %w", name, err)
	}

	blobURL := s.client.ServiceClient().NewContainerClient(s.container).NewBlobClient(name).URL()
	return blobURL + "?" + qp.Encode(), nil
}

type connectionString struct {
	accountName string
	accountKey  string
	serviceURL  string
}

func parseConnectionString(raw string) (connectionString, error) {
	fields := map[string]string{}
	for _, part := range strings.Split(raw, ";") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if ok {
			fields[strings.ToLower(k)] = v
		}
	}

	cs := connectionString{
		accountName: fields["accountname"],
		accountKey:  fields["accountkey"],
		serviceURL:  fields["blobendpoint"],
	}
	if cs.accountName == "" || cs.accountKey == "" {
		return connectionString{}, fmt.Errorf("connection string needs AccountName and AccountKey")
	}
	if cs.serviceURL == "" {
		proto := fields["defaultendpointsprotocol"]
		if proto == "" {
			proto = "https"
		}
		suffix := fields["endpointsuffix"]
		if suffix == "" {
			suffix = "core.windows.net"
		}
		cs.serviceURL = fmt.Sprintf("%s://%s.blob.%s/", proto, cs.accountName, suffix)
	}
	return cs, nil
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// BlobName builds a unique blob name such as
// "branded/3f2b...-jane-doe.docx" from a prefix and an original file name.
func BlobName(prefix, fileName, ext string) string {
	base := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	base = strings.Trim(unsafeName.ReplaceAllString(strings.ToLower(base), "-"), "-.")
	if base == "" {
		base = "cv"
	}
	name := uuid.New().String() + "-" + base + ext
	if prefix == "" {
		return name
	}
	return strings.TrimRight(prefix, "/") + "/" + name
}
