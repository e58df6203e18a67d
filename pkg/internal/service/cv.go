package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	minio "github.com/minio/minio-go/v7"
	"github.com/oklog/ulid"
	"gorm.io/gorm"

	"github.com/mshahid/portfolio-server/pkg/configs"
	ctxPkg "github.com/mshahid/portfolio-server/pkg/context"
	"github.com/mshahid/portfolio-server/pkg/internal/model"
	"github.com/mshahid/portfolio-server/pkg/internal/storage/db"
	"github.com/mshahid/portfolio-server/pkg/internal/storage/mq"
	"github.com/mshahid/portfolio-server/pkg/internal/storage/s3"
	"github.com/mshahid/portfolio-server/pkg/internal/types"
	nlog "github.com/mshahid/portfolio-server/pkg/log"
	"github.com/mshahid/portfolio-server/pkg/queue"
)

// uploadMu 串行化上传序列：清空旧记录和写入新记录之间不允许并发交错.
// 由 cv.serialize_uploads 配置开关.
var uploadMu sync.Mutex

// ulidMu 保护 ULID 熵源，Monotonic reader 不是并发安全的.
var (
	ulidMu      sync.Mutex
	ulidEntropy = ulid.Monotonic(rand.Reader, 0)
)

func newULID() string {
	ulidMu.Lock()
	defer ulidMu.Unlock()

	return ulid.MustNew(ulid.Now(), ulidEntropy).String()
}

// objectStore 抽象简历对象所需的存储操作，s3.Client 满足该接口.
type objectStore interface {
	PutObject(ctx context.Context, bucket, objectName string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	StatObject(ctx context.Context, bucket, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	OpenObject(ctx context.Context, bucket, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
	RemoveObject(ctx context.Context, bucket, objectName string, opts minio.RemoveObjectOptions) error
	ListObjects(ctx context.Context, bucket string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
}

var _ objectStore = (*s3.Client)(nil)

// CVService 负责简历文件的生命周期：任意时刻最多一份当前简历.
type CVService struct {
	dbClient *db.Client
	s3Client objectStore
	mqClient *mq.Client
}

// NewCVService 从 context 获取依赖实例.
func NewCVService(c context.Context) *CVService {
	dbc := ctxPkg.GetDBClient(c)
	s3c := ctxPkg.GetS3Client(c)

	if dbc == nil || dbc.DB == nil || s3c == nil || s3c.Client == nil {
		nlog.Logger().Panic().Msg("storage clients not initialized")
	}

	return &CVService{
		dbClient: dbc,
		s3Client: s3c,
		mqClient: ctxPkg.GetMQClient(c),
	}
}

// UploadInput 上传所需的文件信息与内容流.
type UploadInput struct {
	OriginalName string
	MimeType     string
	Size         int64
	Reader       io.Reader
}

// Upload 替换当前简历：校验 -> 写入新对象 -> 清空旧记录与旧对象 -> 插入新记录.
// 新对象先落存储，数据库失败时清理已写入的新对象，避免留下孤儿.
func (s *CVService) Upload(ctx context.Context, in *UploadInput) (*model.CVRecord, error) {
	cfg := configs.GetConfig().CV

	ext := strings.ToLower(filepath.Ext(in.OriginalName))
	if !isAllowedExtension(ext, cfg.AllowedExtensions) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, ext)
	}

	if in.Size > cfg.MaxSizeBytes {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", ErrFileTooLarge, in.Size, cfg.MaxSizeBytes)
	}

	if cfg.SerializeUploads {
		uploadMu.Lock()
		defer uploadMu.Unlock()
	}

	bucket := configs.GetConfig().S3.BucketName
	objectName := cfg.ObjectPrefix + uuid.NewString() + ext

	// 新对象先写入存储
	_, err := s.s3Client.PutObject(ctx, bucket, objectName, in.Reader, in.Size,
		minio.PutObjectOptions{ContentType: in.MimeType})
	if err != nil {
		return nil, fmt.Errorf("store cv object: %w", err)
	}

	// 旧记录和旧对象在新对象就位后清理
	old, err := s.loadCurrent(ctx)
	if err != nil && !errors.Is(err, ErrNoCV) {
		s.removeObject(ctx, bucket, objectName)
		return nil, err
	}

	record := &model.CVRecord{
		ID:           newULID(),
		FileName:     objectName,
		OriginalName: in.OriginalName,
		MimeType:     in.MimeType,
		Size:         in.Size,
		URL:          fmt.Sprintf("%s/%s/%s", configs.GetConfig().S3.GetEndpointURL(), bucket, objectName),
	}

	err = s.dbClient.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 清空而不是按 ID 删除：无论历史上残留了几行，都收敛到一行
		if err := tx.Where("1 = 1").Delete(&model.CVRecord{}).Error; err != nil {
			return fmt.Errorf("purge cv records: %w", err)
		}

		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("insert cv record: %w", err)
		}

		return nil
	})
	if err != nil {
		// 数据库失败，新对象成为孤儿，立即清理
		s.removeObject(ctx, bucket, objectName)
		return nil, err
	}

	// 旧对象尽力删除，失败交给孤儿清理任务兜底
	if old != nil && old.FileName != objectName {
		s.removeObject(ctx, bucket, old.FileName)
	}

	s.publishUploaded(ctx, record, bucket)

	return record, nil
}

// isAllowedExtension 检查扩展名（含点，小写比较）.
func isAllowedExtension(ext string, allowed []string) bool {
	if ext == "" {
		return false
	}

	for _, a := range allowed {
		if strings.EqualFold(a, ext) {
			return true
		}
	}

	return false
}

// loadCurrent 读取当前简历记录.
func (s *CVService) loadCurrent(ctx context.Context) (*model.CVRecord, error) {
	var record model.CVRecord

	err := s.dbClient.WithContext(ctx).Order("created_at DESC").First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoCV
	}

	if err != nil {
		return nil, fmt.Errorf("load cv record: %w", err)
	}

	return &record, nil
}

// loadByID 按 ID 读取简历记录，不存在返回 ErrNotFound.
func (s *CVService) loadByID(ctx context.Context, id string) (*model.CVRecord, error) {
	var record model.CVRecord

	err := s.dbClient.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: cv %s", ErrNotFound, id)
	}

	if err != nil {
		return nil, fmt.Errorf("load cv record: %w", err)
	}

	return &record, nil
}

// GetCurrent 返回当前简历的下载引用.
func (s *CVService) GetCurrent(ctx context.Context) (*types.CVInfo, error) {
	record, err := s.loadCurrent(ctx)
	if err != nil {
		return nil, err
	}

	return &types.CVInfo{
		ID:   record.ID,
		URL:  fmt.Sprintf("/api/v1/cv/%s/download", record.ID),
		Name: record.OriginalName,
	}, nil
}

// DownloadOutput 下载流与响应头所需的元数据.
type DownloadOutput struct {
	Reader       io.ReadCloser
	OriginalName string
	MimeType     string
	Size         int64
}

// Download 按 ID 打开简历的内容流.
// 记录存在但对象缺失时返回 ErrCVFileMissing 并记录完整性告警.
func (s *CVService) Download(ctx context.Context, id string) (*DownloadOutput, error) {
	record, err := s.loadByID(ctx, id)
	if err != nil {
		return nil, err
	}

	bucket := configs.GetConfig().S3.BucketName

	// 先探测对象，区分"没有简历"与"文件丢失"
	if _, err := s.s3Client.StatObject(ctx, bucket, record.FileName, minio.StatObjectOptions{}); err != nil {
		nlog.Logger().Error().
			Str("record_id", record.ID).
			Str("object", record.FileName).
			Err(err).
			Msg("cv record exists but object is missing")

		return nil, fmt.Errorf("%w: %s", ErrCVFileMissing, record.FileName)
	}

	obj, err := s.s3Client.OpenObject(ctx, bucket, record.FileName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("open cv object: %w", err)
	}

	return &DownloadOutput{
		Reader:       obj,
		OriginalName: record.OriginalName,
		MimeType:     record.MimeType,
		Size:         record.Size,
	}, nil
}

// Delete 按 ID 删除简历的记录与对象. 记录不存在返回 ErrNotFound.
// 对象删除是尽力而为：记录删除成功即视为删除成功.
func (s *CVService) Delete(ctx context.Context, id string) error {
	record, err := s.loadByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.dbClient.WithContext(ctx).Delete(&model.CVRecord{}, "id = ?", record.ID).Error; err != nil {
		return fmt.Errorf("delete cv record: %w", err)
	}

	bucket := configs.GetConfig().S3.BucketName
	s.removeObject(ctx, bucket, record.FileName)

	s.publishDeleted(ctx, record, bucket)

	return nil
}

// removeObject 尽力删除对象，失败只记日志.
func (s *CVService) removeObject(ctx context.Context, bucket, objectName string) {
	if err := s.s3Client.RemoveObject(ctx, bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		nlog.Logger().Warn().Str("object", objectName).Err(err).Msg("remove cv object failed")
	}
}

// publishUploaded 发布 pf.cv.uploaded 事件.
func (s *CVService) publishUploaded(ctx context.Context, record *model.CVRecord, bucket string) {
	evCfg := configs.GetConfig().Events
	if !evCfg.Enabled || !evCfg.CVUploaded || s.mqClient == nil {
		return
	}

	payload := queue.CVUploadedPayload{
		RecordID: record.ID,
		Object: queue.CVObjectRef{
			Bucket:      bucket,
			ObjectKey:   record.FileName,
			Size:        record.Size,
			ContentType: record.MimeType,
		},
		OriginalName: record.OriginalName,
	}

	msg, err := queue.NewWatermillMessage(queue.TopicCVUploaded, payload,
		queue.WithProducer(configs.AppName))
	if err != nil {
		nlog.Logger().Error().Err(err).Msg("build cv uploaded event")
		return
	}

	if err := s.mqClient.Publish(ctx, queue.TopicCVUploaded, msg); err != nil {
		nlog.Logger().Error().Err(err).Msg("publish cv uploaded event")
	}
}

// publishDeleted 发布 pf.cv.deleted 事件.
func (s *CVService) publishDeleted(ctx context.Context, record *model.CVRecord, bucket string) {
	evCfg := configs.GetConfig().Events
	if !evCfg.Enabled || !evCfg.CVDeleted || s.mqClient == nil {
		return
	}

	payload := queue.CVDeletedPayload{
		RecordID: record.ID,
		Object: queue.CVObjectRef{
			Bucket:    bucket,
			ObjectKey: record.FileName,
		},
	}

	msg, err := queue.NewWatermillMessage(queue.TopicCVDeleted, payload,
		queue.WithProducer(configs.AppName))
	if err != nil {
		nlog.Logger().Error().Err(err).Msg("build cv deleted event")
		return
	}

	if err := s.mqClient.Publish(ctx, queue.TopicCVDeleted, msg); err != nil {
		nlog.Logger().Error().Err(err).Msg("publish cv deleted event")
	}
}

// OrphanSweep 清理对象存储中不属于当前记录的简历对象.
// 上传与删除的"尽力删除"失败后由该任务兜底；供定时任务调用.
func (s *CVService) OrphanSweep(ctx context.Context) (int, error) {
	cfg := configs.GetConfig().CV
	bucket := configs.GetConfig().S3.BucketName

	current, err := s.loadCurrent(ctx)
	if err != nil && !errors.Is(err, ErrNoCV) {
		return 0, err
	}

	keep := ""
	if current != nil {
		keep = current.FileName
	}

	// 最近写入的对象留一个宽限期，避免和进行中的上传竞争
	const graceWindow = 10 * time.Minute

	cutoff := time.Now().Add(-graceWindow)
	removed := 0

	objects := s.s3Client.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Prefix:    cfg.ObjectPrefix,
		Recursive: true,
	})

	for obj := range objects {
		if obj.Err != nil {
			return removed, fmt.Errorf("list cv objects: %w", obj.Err)
		}

		if obj.Key == keep || obj.LastModified.After(cutoff) {
			continue
		}

		if err := s.s3Client.RemoveObject(ctx, bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
			nlog.Logger().Warn().Str("object", obj.Key).Err(err).Msg("sweep orphan cv object failed")
			continue
		}

		removed++
	}

	if removed > 0 {
		nlog.Logger().Info().Int("removed", removed).Msg("cv orphan sweep done")
	}

	return removed, nil
}
