package service

import (
	"context"
	"runtime/debug"

	"github.com/MKhiriev/go-locale-sync/internal/logger"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService returns a service reporting version. An empty version is
// rejected with [ErrVersionIsNotSpecified].
func NewAppInfoService(version string, logger *logger.Logger) (AppInfoService, error) {
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// BuildVersion returns the version set at link time, or the main module
// version recorded by the toolchain when buildVersion is empty or "N/A".
func BuildVersion(buildVersion string) string {
	if buildVersion != "" && buildVersion != "N/A" {
		return buildVersion
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
