//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package contract

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/MKhiriev/to-api-contract/internal/adapter"
	"github.com/MKhiriev/to-api-contract/internal/config"
	"github.com/MKhiriev/to-api-contract/internal/fixtures"
	"github.com/MKhiriev/to-api-contract/internal/logger"
	"github.com/MKhiriev/to-api-contract/models"
)

var _ = Describe("CDNs", func() {
	Context("When creating a CDN from prerequisite data", func() {
		var created map[string]any

		BeforeEach(func() {
			var err error
			created, err = fx.CDNPostData(ctx)
			Expect(err).NotTo(HaveOccurred())
			name, ok := created[models.CDNNameKey].(string)
			Expect(ok).To(BeTrue(), "created CDN has no string name")

			DeferCleanup(fixtures.DeleteCDNByName, ctx, session, name)
		})

		It("should return the created CDN with unique name and domainName", func() {
			name, ok := created[models.CDNNameKey].(string)
			Expect(ok).To(BeTrue())
			domain, ok := created[models.CDNDomainNameKey].(string)
			Expect(ok).To(BeTrue())

			Expect(name).To(MatchRegexp(`^.{0,4}\d{1,3}$`))
			Expect(domain).To(MatchRegexp(`^.{0,5}\d{1,3}$`))

			if fake != nil {
				Expect(fake.CDNs()).To(ContainElement(HaveField("Name", name)))
			}
		})

		It("should be listed by name", func() {
			name := created[models.CDNNameKey].(string)

			cdns, _, err := session.GetCDNs(ctx, map[string]string{models.CDNNameKey: name})
			Expect(err).NotTo(HaveOccurred())
			Expect(cdns).To(HaveLen(1))
			Expect(cdns[0].DomainName).To(Equal(created[models.CDNDomainNameKey]))
		})

		It("should reject a second CDN with the same name", func() {
			dup := map[string]any{
				models.CDNNameKey:       created[models.CDNNameKey],
				models.CDNDomainNameKey: "duplicate.example.test",
			}

			_, _, err := session.CreateCDN(ctx, dup)
			Expect(err).To(MatchError(adapter.ErrBadRequest))
		})
	})
})

var _ = Describe("Authentication", func() {
	It("should reject a wrong password", func() {
		args, err := fx.ToArgs()
		Expect(err).NotTo(HaveOccurred())

		s, err := adapter.NewTOSession(adapter.Config{
			Host:       config.SplitURL(args.URL).Hostname(),
			Port:       args.Port,
			APIVersion: args.APIVersion,
			UseSSL:     true,
		}, logger.Nop())
		Expect(err).NotTo(HaveOccurred())

		Expect(s.Login(ctx, args.User, args.Password+"-wrong")).To(MatchError(adapter.ErrUnauthorized))
	})
})
