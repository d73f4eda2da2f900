// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package contract

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/MKhiriev/to-api-contract/internal/adapter"
	"github.com/MKhiriev/to-api-contract/internal/config"
	"github.com/MKhiriev/to-api-contract/internal/fakeops"
	"github.com/MKhiriev/to-api-contract/internal/fixtures"
	"github.com/MKhiriev/to-api-contract/internal/logger"
)

const (
	fakeUser              = "admin"
	fakePassword          = "twelve12"
	fakePrerequisitesFile = "testdata/prerequisite_data.json"
)

var (
	ctx     context.Context
	opts    *config.Options
	fx      *fixtures.Fixtures
	session adapter.TOSession
	fake    *fakeops.Server
)

func TestContract(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Traffic Ops API Contract Suite")
}

var _ = BeforeSuite(func() {
	ctx = context.Background()

	var err error
	opts, err = config.ParseFlags(config.NewFlagSet("contract"), flag.Args())
	Expect(err).NotTo(HaveOccurred())

	settings, err := config.LoadSettings(opts)
	Expect(err).NotTo(HaveOccurred())

	level, err := logger.ParseLevel(settings.LogLevel)
	Expect(err).NotTo(HaveOccurred())
	log := logger.New(GinkgoWriter, "contract", level)

	if !liveTarget(opts) {
		startFakeTrafficOps(log)
	}

	fx = fixtures.New(opts, settings, log, fixtures.WithExit(func(code int) {
		AbortSuite(fmt.Sprintf("fixture requested exit with code %d", code))
	}))

	session, err = fx.ToSession(ctx)
	Expect(err).NotTo(HaveOccurred())
})

// liveTarget reports whether a real Traffic Ops was configured.
func liveTarget(opts *config.Options) bool {
	if opts.URL != nil {
		return true
	}
	if opts.ConfigPath == "" {
		return false
	}

	_, err := os.Stat(opts.ConfigPath)
	return err == nil
}

func startFakeTrafficOps(log *logger.Logger) {
	fake = fakeops.New(fakeUser, fakePassword, log.GetChildLogger())
	ts := fakeops.NewTLSServer(fake)
	DeferCleanup(ts.Close)

	user, password, url := fakeUser, fakePassword, ts.URL+"/api/4.0"
	opts.User, opts.Password, opts.URL = &user, &password, &url
	opts.ConfigPath = ""

	if _, err := os.Stat(opts.PrerequisitesPath); err != nil {
		opts.PrerequisitesPath = fakePrerequisitesFile
	}

	GinkgoWriter.Printf("running against fake Traffic Ops at %s\n", ts.URL)
}
