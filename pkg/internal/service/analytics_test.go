package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	ctxPkg "github.com/mshahid/portfolio-server/pkg/context"
	"github.com/mshahid/portfolio-server/pkg/internal/model"
	"github.com/mshahid/portfolio-server/pkg/internal/service"
	"github.com/mshahid/portfolio-server/pkg/internal/types"
)

const (
	uaChrome  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	uaIPhone  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	uaIPad    = "Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.0 Mobile/15E148 Safari/604.1"
	uaCrawler = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
)

// TestRecordPageView 测试页面校验、referrer 兜底与 UA 解析.
func TestRecordPageView(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewAnalyticsService(ctx)

	pv, err := svc.RecordPageView(ctx, &types.RecordPageViewRequest{Page: "home"}, "198.51.100.2", uaChrome, "")
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	if pv.Referrer != model.ReferrerDirect {
		t.Errorf("expected referrer %q, got %q", model.ReferrerDirect, pv.Referrer)
	}

	if pv.DeviceType != model.DeviceDesktop {
		t.Errorf("expected desktop, got %q", pv.DeviceType)
	}

	if pv.BrowserName == "" || pv.OSName == "" {
		t.Errorf("expected parsed client info, got browser=%q os=%q", pv.BrowserName, pv.OSName)
	}

	// 页面名大小写不敏感，统一转小写后入库
	pv, err = svc.RecordPageView(ctx, &types.RecordPageViewRequest{Page: "Home"}, "", uaChrome, "")
	if err != nil {
		t.Fatalf("record mixed-case page: %v", err)
	}

	if pv.Page != "home" {
		t.Errorf("expected page persisted as %q, got %q", "home", pv.Page)
	}

	// 未知页面拒绝
	if _, err := svc.RecordPageView(ctx, &types.RecordPageViewRequest{Page: "secret"}, "", "", ""); !errors.Is(err, service.ErrInvalidPage) {
		t.Errorf("expected ErrInvalidPage, got %v", err)
	}
}

// TestDeviceClassification 测试设备分类优先级 bot > tablet > mobile > desktop.
func TestDeviceClassification(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewAnalyticsService(ctx)

	cases := []struct {
		ua   string
		want string
	}{
		{uaChrome, model.DeviceDesktop},
		{uaIPhone, model.DeviceMobile},
		{uaIPad, model.DeviceTablet},
		{uaCrawler, model.DeviceBot},
		{"", model.DeviceDesktop},
	}

	for _, tc := range cases {
		pv, err := svc.RecordPageView(ctx, &types.RecordPageViewRequest{Page: "about"}, "", tc.ua, "")
		if err != nil {
			t.Fatalf("record: %v", err)
		}

		if pv.DeviceType != tc.want {
			t.Errorf("ua %q: expected %q, got %q", tc.ua, tc.want, pv.DeviceType)
		}
	}
}

// seedPageViews 直接写入浏览事件，CreatedAt 可控.
func seedPageViews(t *testing.T, ctx context.Context, page, device string, n int, at time.Time) {
	t.Helper()

	dbc := ctxPkg.GetDBClient(ctx)

	for i := 0; i < n; i++ {
		pv := model.PageView{
			Page:        page,
			DeviceType:  device,
			BrowserName: "Chrome",
			OSName:      "Linux",
			Referrer:    model.ReferrerDirect,
			CreatedAt:   at.Add(time.Duration(i) * time.Second),
		}
		if err := dbc.Create(&pv).Error; err != nil {
			t.Fatalf("seed page view: %v", err)
		}
	}
}

// TestAnalyticsSummary 测试汇总聚合与日期过滤.
func TestAnalyticsSummary(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewAnalyticsService(ctx)

	now := time.Now().UTC()
	seedPageViews(t, ctx, "home", model.DeviceDesktop, 5, now)
	seedPageViews(t, ctx, "portfolio", model.DeviceMobile, 3, now)
	seedPageViews(t, ctx, "home", model.DeviceDesktop, 2, now.AddDate(0, 0, -40))

	summary, err := svc.Summary(ctx, &types.SummaryQuery{})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if summary.TotalViews != 10 {
		t.Errorf("expected 10 total views, got %d", summary.TotalViews)
	}

	if len(summary.ViewsByPage) == 0 || summary.ViewsByPage[0].Key != "home" || summary.ViewsByPage[0].Count != 7 {
		t.Errorf("unexpected viewsByPage: %+v", summary.ViewsByPage)
	}

	if len(summary.RecentActivity) != 10 {
		t.Errorf("expected 10 recent entries, got %d", len(summary.RecentActivity))
	}

	// 日期范围过滤掉 40 天前的记录
	start := now.AddDate(0, 0, -7).Format("2006-01-02")
	end := now.Format("2006-01-02")

	ranged, err := svc.Summary(ctx, &types.SummaryQuery{StartDate: start, EndDate: end})
	if err != nil {
		t.Fatalf("ranged summary: %v", err)
	}

	if ranged.TotalViews != 8 {
		t.Errorf("expected 8 views in range, got %d", ranged.TotalViews)
	}

	// 非法日期
	if _, err := svc.Summary(ctx, &types.SummaryQuery{StartDate: "03-01-2026"}); !errors.Is(err, service.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

// TestAnalyticsTrends 测试逐日趋势与零填充.
func TestAnalyticsTrends(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewAnalyticsService(ctx)

	today := time.Now().UTC().Truncate(24 * time.Hour)
	seedPageViews(t, ctx, "home", model.DeviceDesktop, 4, today.Add(2*time.Hour))
	seedPageViews(t, ctx, "about", model.DeviceDesktop, 2, today.AddDate(0, 0, -3).Add(time.Hour))

	points, err := svc.Trends(ctx, 7)
	if err != nil {
		t.Fatalf("trends: %v", err)
	}

	if len(points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(points))
	}

	if points[6].Date != today.Format("2006-01-02") || points[6].Count != 4 {
		t.Errorf("unexpected last point: %+v", points[6])
	}

	if points[3].Count != 2 {
		t.Errorf("expected 2 views 3 days ago, got %d", points[3].Count)
	}

	var zeros int

	for _, p := range points {
		if p.Count == 0 {
			zeros++
		}
	}

	if zeros != 5 {
		t.Errorf("expected 5 zero-filled days, got %d", zeros)
	}
}

// TestPruneOldViews 测试保留期清理.
func TestPruneOldViews(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewAnalyticsService(ctx)

	now := time.Now().UTC()
	seedPageViews(t, ctx, "home", model.DeviceDesktop, 2, now)
	seedPageViews(t, ctx, "home", model.DeviceDesktop, 3, now.AddDate(0, 0, -400))

	deleted, err := svc.PruneOldViews(ctx)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}

	if deleted != 3 {
		t.Errorf("expected 3 pruned rows, got %d", deleted)
	}

	summary, err := svc.Summary(ctx, &types.SummaryQuery{})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if summary.TotalViews != 2 {
		t.Errorf("expected 2 surviving views, got %d", summary.TotalViews)
	}
}
