package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"backend_tigo/config"
	"backend_tigo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu      sync.Mutex
	alerts  []models.Incidencia
	cliente []*models.Cliente
}

func (n *recordingNotifier) NotifyCriticalIncident(_ context.Context, incidencia models.Incidencia, cliente *models.Cliente) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.alerts = append(n.alerts, incidencia)
	n.cliente = append(n.cliente, cliente)
	return nil
}

func TestCriticalIncidentMessage(t *testing.T) {
	c := cliente("u1", "Ana", "Paz")
	c.Distrito = "San Isidro"
	incidencia := models.Incidencia{
		TipoIncidencia: "falla_servicio",
		Descripcion:    "Caída total <nodo 4>",
		Fecha:          models.NewDate(mustDate(t, "2024-05-10")),
		Prioridad:      "critica",
	}

	msg := CriticalIncidentMessage(incidencia, &c)

	assert.Contains(t, msg, "Ana Paz")
	assert.Contains(t, msg, "San Isidro")
	assert.Contains(t, msg, "2024-05-10")
	assert.Contains(t, msg, "&lt;nodo 4&gt;")
	assert.Contains(t, CriticalIncidentMessage(incidencia, nil), MissingCustomerLabel)
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d.Time
}

func TestIncidentRegistered_OnlyCritical(t *testing.T) {
	store := newFakeStore()
	store.tables["clientes"] = []models.Cliente{cliente("u1", "Ana", "Paz")}
	notifier := &recordingNotifier{}
	catalog := NewCatalogService(store, notifier, quietLogger())

	catalog.IncidentRegistered(context.Background(), models.Incidencia{IDCliente: "u1", Prioridad: "media"})
	catalog.IncidentRegistered(context.Background(), models.Incidencia{IDCliente: "u1", Prioridad: "critica"})

	require.Len(t, notifier.alerts, 1)
	assert.Equal(t, "critica", notifier.alerts[0].Prioridad)
	require.NotNil(t, notifier.cliente[0])
	assert.Equal(t, "Ana Paz", notifier.cliente[0].FullName())
}

func TestNewNotifier_WithoutTokenIsNop(t *testing.T) {
	notifier, err := NewNotifier(config.TelegramConfig{}, quietLogger())
	require.NoError(t, err)
	assert.IsType(t, NopNotifier{}, notifier)
}
