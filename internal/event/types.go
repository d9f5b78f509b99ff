// internal/event/types.go
package event

import "go-maze-absorb/internal/types"

const (
	EnemySpawned  EventType = "EnemySpawned"  // Data: EnemyData
	EnemyAbsorbed EventType = "EnemyAbsorbed" // Data: AbsorbData
	PlayerHit     EventType = "PlayerHit"     // Data: HitData
	BulletFired   EventType = "BulletFired"   // Data: EnemyData
	FireToggled   EventType = "FireToggled"   // Data: bool
	GameOver      EventType = "GameOver"      // Data: EnemyData (кто съел игрока)
)

type EnemyData struct {
	EnemyID types.EntityID
	Size    int
}

type AbsorbData struct {
	EnemyID    types.EntityID
	EnemySize  int
	PlayerSize float64
}

type HitData struct {
	BulletID   types.EntityID
	PlayerSize float64
}
