package manager

import (
	"context"
	"errors"
	"slices"
	"sync"

	"go.trai.ch/apkpin/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Update updates every package file below root.
// Per-file failures are recorded in the reports; the returned error is
// reserved for discovery failures and cancellation.
func (m *Manager) Update(ctx context.Context, root string, opts UpdateOptions) ([]FileReport, error) {
	files, err := m.FindPackageFiles(root)
	if err != nil {
		return nil, err
	}

	reports := make([]FileReport, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.parallelism)

	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = m.UpdatePackageFile(gctx, file, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// UpdatePackageFile looks up newer releases for the exactly pinned packages
// of packageFile, rewrites their declarations and regenerates the sibling
// lock document.
func (m *Manager) UpdatePackageFile(ctx context.Context, packageFile string, opts UpdateOptions) (report FileReport) {
	ctx, vertex := m.telemetry.Record(ctx, packageFile)
	report = FileReport{PackageFile: packageFile, Status: domain.UpdateStatusUnchanged}
	defer func() {
		switch report.Status {
		case domain.UpdateStatusFailed:
			vertex.Complete(report.err)
		case domain.UpdateStatusUpdated:
			vertex.Complete(nil)
		default:
			vertex.Cached()
		}
	}()

	content, err := m.tree.ReadFile(packageFile)
	if err != nil {
		report.fail(err)
		return report
	}
	cfg, err := m.loader.Load(content)
	if err != nil {
		m.logger.Debug("skipping unparsable package file", "file", packageFile, "error", err.Error())
		report.Status = domain.UpdateStatusSkipped
		return report
	}

	pins, findings := declaredPins(cfg.Contents.Packages)
	report.Findings = findings
	if len(pins) == 0 && len(findings) == 0 {
		report.Status = domain.UpdateStatusSkipped
		return report
	}

	upgrades, lookupFindings, err := m.lookupUpgrades(ctx, packageFile, cfg, pins, opts.Arch)
	report.Findings = append(report.Findings, lookupFindings...)
	if err != nil {
		report.fail(err)
		return report
	}
	report.Upgrades = upgrades

	updated := string(content)
	for _, up := range upgrades {
		updated, err = domain.RewriteDeclaration(updated, up.DepName, up.CurrentValue, up.NewValue)
		if err != nil {
			report.fail(err)
			return report
		}
		vertex.Log(domain.LogLevelInfo, up.DepName+" "+up.CurrentValue+" -> "+up.NewValue)
	}

	if opts.DryRun {
		if len(upgrades) > 0 {
			report.Status = domain.UpdateStatusUpdated
		}
		return report
	}

	if updated != string(content) {
		if err := m.tree.WriteFile(packageFile, []byte(updated)); err != nil {
			report.fail(err)
			return report
		}
		report.Status = domain.UpdateStatusUpdated
	}

	if len(upgrades) == 0 && !opts.LockMaintenance {
		return report
	}

	artifact, err := m.UpdateArtifacts(ctx, packageFile)
	if err != nil {
		report.fail(err)
		return report
	}
	report.Artifact = artifact
	switch {
	case artifact == nil:
	case artifact.Error != nil:
		lockErr := zerr.With(domain.ErrLockGenerationFailed, "lock_file", artifact.Error.LockFile)
		report.fail(zerr.With(lockErr, "stderr", artifact.Error.Stderr))
	default:
		report.Status = domain.UpdateStatusUpdated
	}
	return report
}

// declaredPins returns the first declaration of every exactly pinned package,
// in declaration order, and findings for the declarations that cannot be upgraded.
func declaredPins(tokens []string) ([]domain.Specifier, []Finding) {
	var (
		pins     []domain.Specifier
		findings []Finding
		seen     = make(map[string]struct{}, len(tokens))
	)
	for _, token := range tokens {
		spec := domain.ParseSpecifier(token)
		if spec.Kind == domain.SpecifierUnversioned {
			continue
		}
		if _, ok := seen[spec.Name]; ok {
			continue
		}
		seen[spec.Name] = struct{}{}

		switch {
		case spec.Kind == domain.SpecifierRange:
			findings = append(findings, Finding{DepName: spec.Name, CurrentValue: spec.Value(), Reason: ReasonUnsupportedConstraint})
		case spec.Operator != "=":
			findings = append(findings, Finding{DepName: spec.Name, CurrentValue: spec.Value(), Reason: ReasonHyphenatedPin})
		case !domain.IsValidVersion(spec.Version):
			findings = append(findings, Finding{DepName: spec.Name, CurrentValue: spec.Value(), Reason: ReasonInvalidCurrentVersion})
		default:
			pins = append(pins, spec)
		}
	}
	return pins, findings
}

func (m *Manager) lookupUpgrades(
	ctx context.Context,
	packageFile string,
	cfg *domain.PackageFile,
	pins []domain.Specifier,
	arch string,
) ([]domain.Upgrade, []Finding, error) {
	if arch == "" {
		arch = domain.DefaultArch
		if len(cfg.Archs) > 0 {
			arch = cfg.Archs[0]
		}
	}
	registryURLs := cfg.RegistryURLs(m.registryURLs)

	upgrades := make([]*domain.Upgrade, len(pins))
	var (
		mu       sync.Mutex
		findings []Finding
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.parallelism)
	for i, pin := range pins {
		g.Go(func() error {
			releases, err := m.registry.Releases(gctx, registryURLs, arch, pin.Name)
			if errors.Is(err, domain.ErrPackageNotFound) || (err == nil && len(releases) == 0) {
				mu.Lock()
				findings = append(findings, Finding{DepName: pin.Name, CurrentValue: pin.Version, Reason: ReasonNoReleases})
				mu.Unlock()
				return nil
			}
			if err != nil {
				return err
			}

			versions := make([]string, 0, len(releases))
			for _, rel := range releases {
				versions = append(versions, rel.Version)
			}
			latest, ok := domain.LatestStableVersion(versions, pin.Version)
			if !ok {
				return nil
			}
			m.logger.Debug("found upgrade", "file", packageFile, "package", pin.Name, "from", pin.Version, "to", latest)
			upgrades[i] = &domain.Upgrade{
				PackageFile:  packageFile,
				DepName:      pin.Name,
				CurrentValue: pin.Version,
				NewValue:     latest,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, findings, err
	}

	out := make([]domain.Upgrade, 0, len(upgrades))
	for _, up := range upgrades {
		if up != nil {
			out = append(out, *up)
		}
	}
	slices.SortStableFunc(findings, func(a, b Finding) int {
		return indexOfPin(pins, a.DepName) - indexOfPin(pins, b.DepName)
	})
	return out, findings, nil
}

func indexOfPin(pins []domain.Specifier, name string) int {
	return slices.IndexFunc(pins, func(s domain.Specifier) bool { return s.Name == name })
}
