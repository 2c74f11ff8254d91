package services_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cynric/familymanagement-backend/internal/services"
)

type fakeProbe struct {
	result  int
	tables  []string
	err     error
	explode bool
}

func (p *fakeProbe) Ping(context.Context) (int, error) {
	if p.explode {
		panic("driver exploded")
	}
	return p.result, p.err
}

func (p *fakeProbe) ListTables(context.Context) ([]string, error) {
	return p.tables, p.err
}

var _ = Describe("DiagnosticsService", func() {
	var (
		probe   *fakeProbe
		metrics *recordingMetrics
		service *services.DiagnosticsService
	)

	BeforeEach(func() {
		probe = &fakeProbe{result: 1}
		metrics = &recordingMetrics{}
		service = services.NewDiagnosticsService(probe, metrics, discardLogger())
	})

	Describe("TestConnection", func() {
		It("reporta o valor do SELECT 1", func() {
			status := service.TestConnection(context.Background())
			Expect(status.Connected).To(BeTrue())
			Expect(status.Result).To(Equal(1))
			Expect(metrics.probes).To(Equal([]bool{true}))
		})

		It("converte falha em dado", func() {
			probe.err = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

			status := service.TestConnection(context.Background())
			Expect(status.Connected).To(BeFalse())
			Expect(status.Error).To(ContainSubstring("connection refused"))
			Expect(metrics.probes).To(Equal([]bool{false}))
		})

		It("não deixa panic escapar", func() {
			probe.explode = true

			var status services.ConnectionStatus
			Expect(func() { status = service.TestConnection(context.Background()) }).NotTo(Panic())
			Expect(status.Connected).To(BeFalse())
			Expect(status.Error).To(Equal("driver exploded"))
		})

		It("aceita metrics nil", func() {
			service = services.NewDiagnosticsService(probe, nil, discardLogger())
			Expect(service.TestConnection(context.Background()).Connected).To(BeTrue())
		})
	})

	Describe("ListTables", func() {
		It("retorna as tabelas na ordem do banco", func() {
			probe.tables = []string{"users", "sessions"}

			tables, err := service.ListTables(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(tables).To(Equal([]string{"users", "sessions"}))
		})

		It("propaga erro", func() {
			probe.err = errors.New("permission denied")

			_, err := service.ListTables(context.Background())
			Expect(err).To(MatchError(ContainSubstring("permission denied")))
		})
	})
})
