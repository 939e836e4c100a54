package store

import (
	"context"
	"fmt"

	"github.com/ssanyal/recruitdojo/ent"
	"github.com/ssanyal/recruitdojo/ent/player"
)

// playerRepo implements PlayerRepo using the ent client.
type playerRepo struct {
	client *ent.Client
}

func (r *playerRepo) GetOrCreate(ctx context.Context, name string) (*Player, error) {
	row, err := r.client.Player.Query().
		Where(player.Name(name)).
		Only(ctx)
	if err == nil {
		return playerFromRow(row), nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query player %q: %w", name, err)
	}

	row, err = r.client.Player.Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create player %q: %w", name, err)
	}
	return playerFromRow(row), nil
}

func (r *playerRepo) Get(ctx context.Context, id int) (*Player, error) {
	row, err := r.client.Player.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get player %d: %w", id, err)
	}
	return playerFromRow(row), nil
}

func (r *playerRepo) AddXP(ctx context.Context, id, delta int) error {
	if err := r.client.Player.UpdateOneID(id).AddXp(delta).Exec(ctx); err != nil {
		return fmt.Errorf("add xp for player %d: %w", id, err)
	}
	return nil
}

// playerFromRow is the single row→domain mapping for players.
func playerFromRow(row *ent.Player) *Player {
	return &Player{
		ID:        row.ID,
		Name:      row.Name,
		XP:        row.Xp,
		CreatedAt: row.CreatedAt,
	}
}
