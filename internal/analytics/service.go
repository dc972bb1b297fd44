package analytics

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kiep-data/analytics-cli/internal/model"
	"github.com/kiep-data/analytics-cli/pkg/kiepapi"
)

// Service exposes one operation per analytic tool. It is stateless; every
// call fetches fresh records and no state crosses invocations.
type Service struct {
	api kiepapi.Client
}

// NewService creates a Service backed by the given data API client.
func NewService(api kiepapi.Client) *Service {
	return &Service{api: api}
}

// RegionHealth fetches a region and its health indicators and classifies
// the region into a health band. The indicator fetch is best-effort:
// when it fails the indicators default to 0. A missing region is a
// not-found error.
func (s *Service) RegionHealth(ctx context.Context, code string) (*RegionHealthReport, error) {
	var (
		region *model.Region
		health *model.HealthMetrics
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := s.api.Region(gctx, code)
		if err != nil {
			if eris.Is(err, kiepapi.ErrNotFound) {
				return notFoundErr("region %s not found", code)
			}
			return upstreamErr(err, "fetch region %s", code)
		}
		region = r
		return nil
	})
	g.Go(func() error {
		h, err := s.api.RegionHealth(gctx, code)
		if err != nil {
			zap.L().Debug("analytics: health metrics unavailable, defaulting to zero",
				zap.String("region_code", code),
				zap.Error(err),
			)
			return nil
		}
		health = h
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return buildHealthReport(region, health), nil
}

// CompareRegions fetches up to maxCompareRegions regions concurrently and
// ranks them per metric. Failed lookups are dropped, preserving request
// order for the survivors; an all-failed request is an empty result.
func (s *Service) CompareRegions(ctx context.Context, codes []string) (*Comparison, error) {
	if len(codes) > maxCompareRegions {
		return nil, validationErr("at most %d regions can be compared, got %d", maxCompareRegions, len(codes))
	}

	fetched := make([]*model.Region, len(codes))
	g, gctx := errgroup.WithContext(ctx)
	for i, code := range codes {
		g.Go(func() error {
			region, err := s.api.Region(gctx, code)
			if err != nil {
				// One failed code must not abort the siblings.
				zap.L().Warn("analytics: skipping region in comparison",
					zap.String("region_code", code),
					zap.Error(err),
				)
				return nil
			}
			fetched[i] = region
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, upstreamErr(err, "compare regions")
	}

	regions := make([]model.Region, 0, len(fetched))
	for _, r := range fetched {
		if r != nil {
			regions = append(regions, *r)
		}
	}
	if len(regions) == 0 {
		return nil, emptyErr("no valid regions among %d requested codes", len(codes))
	}

	return rankRegions(regions), nil
}

// FindClusters scans the bulk region list for concentrations of the given
// industry keyword.
func (s *Service) FindClusters(ctx context.Context, industry string, minCompanies, topN int) (*ClusterReport, error) {
	if industry == "" {
		return nil, validationErr("industry keyword is required")
	}
	if minCompanies <= 0 {
		minCompanies = 10
	}
	if topN <= 0 {
		topN = 10
	}

	regions, err := s.api.Regions(ctx, clusterFetchLimit)
	if err != nil {
		return nil, upstreamErr(err, "list regions")
	}

	report := matchClusters(regions, industry, minCompanies, topN)
	zap.L().Info("analytics: cluster scan complete",
		zap.String("industry", industry),
		zap.Int("regions_scanned", len(regions)),
		zap.Int("total_clusters", report.TotalClusters),
	)
	return report, nil
}

// CompanyProfile normalizes and validates the business registration
// number, fetches the company, and reshapes it into the profile form.
func (s *Service) CompanyProfile(ctx context.Context, bizNo string) (*CompanyProfile, error) {
	clean, err := NormalizeBizNo(bizNo)
	if err != nil {
		return nil, err
	}

	company, err := s.api.Company(ctx, clean)
	if err != nil {
		if eris.Is(err, kiepapi.ErrNotFound) {
			return nil, notFoundErr("no company registered under %s", clean)
		}
		return nil, upstreamErr(err, "fetch company %s", clean)
	}

	return assembleProfile(company), nil
}

// ComplexRisk assesses industrial-complex risk. With a complex code it
// assesses that single complex and a missing code is a not-found error;
// otherwise it assesses the bulk list (optionally filtered by province),
// where an empty list is a zero-count report, not an error.
func (s *Service) ComplexRisk(ctx context.Context, complexCode, province string) (*RiskReport, error) {
	var complexes []model.Complex

	if complexCode != "" {
		cx, err := s.api.Complex(ctx, complexCode)
		if err != nil {
			if eris.Is(err, kiepapi.ErrNotFound) {
				return nil, notFoundErr("complex %s not found", complexCode)
			}
			return nil, upstreamErr(err, "fetch complex %s", complexCode)
		}
		complexes = []model.Complex{*cx}
	} else {
		list, err := s.api.Complexes(ctx, province)
		if err != nil {
			return nil, upstreamErr(err, "list complexes")
		}
		complexes = list
	}

	return assessRisk(complexes), nil
}

// ListRegions returns the raw region directory, optionally filtered by
// province.
func (s *Service) ListRegions(ctx context.Context, province string) ([]model.Region, error) {
	regions, err := s.api.Regions(ctx, clusterFetchLimit)
	if err != nil {
		return nil, upstreamErr(err, "list regions")
	}
	if province == "" {
		return regions, nil
	}
	filtered := make([]model.Region, 0, len(regions))
	for _, r := range regions {
		if r.Province == province {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}
