package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	minio "github.com/minio/minio-go/v7"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mshahid/portfolio-server/pkg/configs"
	"github.com/mshahid/portfolio-server/pkg/internal/model"
	"github.com/mshahid/portfolio-server/pkg/internal/storage/db"
)

// stubObject 内存对象存储中的一个对象.
type stubObject struct {
	data    []byte
	modTime time.Time
}

// stubObjectStore 基于内存 map 的 objectStore 实现.
type stubObjectStore struct {
	mu      sync.Mutex
	objects map[string]stubObject // 键: bucket/objectName
}

func newStubObjectStore() *stubObjectStore {
	return &stubObjectStore{objects: make(map[string]stubObject)}
}

func (s *stubObjectStore) key(bucket, objectName string) string {
	return bucket + "/" + objectName
}

func (s *stubObjectStore) PutObject(_ context.Context, bucket, objectName string, reader io.Reader, _ int64, _ minio.PutObjectOptions) (minio.UploadInfo, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.objects[s.key(bucket, objectName)] = stubObject{data: data, modTime: time.Now()}

	return minio.UploadInfo{Bucket: bucket, Key: objectName, Size: int64(len(data))}, nil
}

func (s *stubObjectStore) StatObject(_ context.Context, bucket, objectName string, _ minio.StatObjectOptions) (minio.ObjectInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, ok := s.objects[s.key(bucket, objectName)]
	if !ok {
		return minio.ObjectInfo{}, fmt.Errorf("object %s not found", objectName)
	}

	return minio.ObjectInfo{Key: objectName, Size: int64(len(obj.data)), LastModified: obj.modTime}, nil
}

func (s *stubObjectStore) OpenObject(_ context.Context, bucket, objectName string, _ minio.GetObjectOptions) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, ok := s.objects[s.key(bucket, objectName)]
	if !ok {
		return nil, fmt.Errorf("object %s not found", objectName)
	}

	return io.NopCloser(bytes.NewReader(obj.data)), nil
}

func (s *stubObjectStore) RemoveObject(_ context.Context, bucket, objectName string, _ minio.RemoveObjectOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.objects, s.key(bucket, objectName))

	return nil
}

func (s *stubObjectStore) ListObjects(_ context.Context, bucket string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo)

	go func() {
		defer close(ch)

		s.mu.Lock()
		defer s.mu.Unlock()

		prefix := bucket + "/" + opts.Prefix
		for k, obj := range s.objects {
			if strings.HasPrefix(k, prefix) {
				ch <- minio.ObjectInfo{Key: strings.TrimPrefix(k, bucket+"/"), LastModified: obj.modTime}
			}
		}
	}()

	return ch
}

func (s *stubObjectStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.objects)
}

// newLifecycleService 构造带内存数据库和内存对象存储的简历服务.
func newLifecycleService(t *testing.T) (*CVService, *stubObjectStore, *gorm.DB) {
	t.Helper()

	if err := configs.InitConfig(t.TempDir()); err != nil {
		t.Fatalf("init config: %v", err)
	}

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := gdb.AutoMigrate(&model.CVRecord{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	store := newStubObjectStore()

	return &CVService{dbClient: &db.Client{DB: gdb}, s3Client: store}, store, gdb
}

// TestUploadReplacesPrevious 测试重复上传后只保留最新一份记录与对象，
// 旧记录的 ID 不再可下载.
func TestUploadReplacesPrevious(t *testing.T) {
	svc, store, gdb := newLifecycleService(t)
	ctx := context.Background()

	first, err := svc.Upload(ctx, &UploadInput{
		OriginalName: "resume-v1.pdf",
		MimeType:     "application/pdf",
		Size:         7,
		Reader:       strings.NewReader("first-A"),
	})
	if err != nil {
		t.Fatalf("upload first cv: %v", err)
	}

	second, err := svc.Upload(ctx, &UploadInput{
		OriginalName: "resume-v2.pdf",
		MimeType:     "application/pdf",
		Size:         8,
		Reader:       strings.NewReader("second-B"),
	})
	if err != nil {
		t.Fatalf("upload second cv: %v", err)
	}

	var count int64
	if err := gdb.Model(&model.CVRecord{}).Count(&count).Error; err != nil {
		t.Fatalf("count records: %v", err)
	}

	if count != 1 {
		t.Errorf("expected exactly 1 cv record after replacement, got %d", count)
	}

	info, err := svc.GetCurrent(ctx)
	if err != nil {
		t.Fatalf("get current cv: %v", err)
	}

	if info.Name != "resume-v2.pdf" {
		t.Errorf("expected current cv resume-v2.pdf, got %q", info.Name)
	}

	if info.ID != second.ID {
		t.Errorf("expected current id %q, got %q", second.ID, info.ID)
	}

	// 旧 ID 不再可下载
	if _, err := svc.Download(ctx, first.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for replaced cv id, got %v", err)
	}

	// 旧对象已清理，存储中只剩最新对象
	if got := store.count(); got != 1 {
		t.Errorf("expected 1 object in store after replacement, got %d", got)
	}

	out, err := svc.Download(ctx, second.ID)
	if err != nil {
		t.Fatalf("download current cv: %v", err)
	}

	defer func() { _ = out.Reader.Close() }()

	data, err := io.ReadAll(out.Reader)
	if err != nil {
		t.Fatalf("read cv stream: %v", err)
	}

	if string(data) != "second-B" {
		t.Errorf("expected second upload content, got %q", data)
	}

	if out.OriginalName != "resume-v2.pdf" {
		t.Errorf("expected original name resume-v2.pdf, got %q", out.OriginalName)
	}
}

// TestDeleteCVRemovesRecordAndObject 测试删除后记录与对象都不可达.
func TestDeleteCVRemovesRecordAndObject(t *testing.T) {
	svc, store, _ := newLifecycleService(t)
	ctx := context.Background()

	record, err := svc.Upload(ctx, &UploadInput{
		OriginalName: "resume.pdf",
		MimeType:     "application/pdf",
		Size:         5,
		Reader:       strings.NewReader("bytes"),
	})
	if err != nil {
		t.Fatalf("upload cv: %v", err)
	}

	if err := svc.Delete(ctx, record.ID); err != nil {
		t.Fatalf("delete cv: %v", err)
	}

	if _, err := svc.GetCurrent(ctx); !errors.Is(err, ErrNoCV) {
		t.Errorf("expected ErrNoCV after delete, got %v", err)
	}

	if _, err := svc.Download(ctx, record.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for deleted cv id, got %v", err)
	}

	if got := store.count(); got != 0 {
		t.Errorf("expected empty object store after delete, got %d objects", got)
	}

	if err := svc.Delete(ctx, record.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on double delete, got %v", err)
	}
}
