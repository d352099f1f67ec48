package terceros

import (
	"time"

	"github.com/google/uuid"

	"github.com/acamilodelgado0305/tercerosms/internal/application/dto"
	"github.com/acamilodelgado0305/tercerosms/internal/domain/entity"
)

// reconciliarAdjuntos aplica el mismo diff por identidad que las cuentas
// bancarias sobre los pares (url, nombre). A diferencia de las cuentas, una
// entrada sin url o sin nombre se omite en silencio: los adjuntos son
// informativos y no justifican abortar la escritura completa.
// Con in == nil no se toca nada.
func reconciliarAdjuntos(r Repos, terceroID string, in *[]dto.AdjuntoInput, now time.Time) error {
	if in == nil {
		return nil
	}

	guardados, err := r.Adjuntos.ListByTercero(terceroID)
	if err != nil {
		return err
	}
	porID := make(map[string]*entity.Adjunto, len(guardados))
	for _, g := range guardados {
		porID[g.ID] = g
	}

	conservados := make(map[string]bool, len(*in))
	for _, a := range *in {
		if a.URL == "" || a.Nombre == "" {
			continue
		}
		if existente, ok := porID[a.ID]; a.ID != "" && ok {
			existente.URL = a.URL
			existente.Nombre = a.Nombre
			if err := r.Adjuntos.Update(existente); err != nil {
				return err
			}
			conservados[existente.ID] = true
			continue
		}
		nuevo := &entity.Adjunto{
			ID:        uuid.New().String(),
			TerceroID: terceroID,
			URL:       a.URL,
			Nombre:    a.Nombre,
			CreatedAt: now,
		}
		if err := r.Adjuntos.Create(nuevo); err != nil {
			return err
		}
		conservados[nuevo.ID] = true
	}
	for _, g := range guardados {
		if !conservados[g.ID] {
			if err := r.Adjuntos.Delete(g.ID); err != nil {
				return err
			}
		}
	}
	return nil
}
