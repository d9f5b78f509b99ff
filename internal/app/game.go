// internal/app/game.go
package app

import (
	"log"

	"go-maze-absorb/internal/component"
	"go-maze-absorb/internal/config"
	"go-maze-absorb/internal/entity"
	"go-maze-absorb/internal/event"
	"go-maze-absorb/internal/system"
	"go-maze-absorb/internal/utils"
	"go-maze-absorb/pkg/maze"
)

// Stats — счётчики партии, собираются из событий.
type Stats struct {
	Spawned      int
	Absorbed     int
	Hits         int
	BulletsFired int
}

// Game holds the main game state and logic. Фронтенд вызывает Update
// раз в кадр и больше ничего не знает о системах.
type Game struct {
	ECS              *entity.ECS
	Clock            *system.Clock
	PhysicsSystem    *system.PhysicsSystem
	PlayerSystem     *system.PlayerSystem
	MovementSystem   *system.MovementSystem
	WanderSystem     *system.WanderSystem
	SpawnSystem      *system.SpawnSystem
	ProjectileSystem *system.ProjectileSystem
	CombatSystem     *system.CombatSystem
	StateSystem      *system.StateSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService
	Maze             maze.Layout
	Stats            Stats

	frame int
}

// NewGame строит мир под область viewportW x viewportH: лабиринт,
// игрок в центре и стартовая популяция врагов.
func NewGame(tuning config.Tuning, viewportW, viewportH float64) *Game {
	// как и в Resize: за пределами пространства коллизий мира нет
	viewportW = min(viewportW, config.WorldMaxWidth)
	viewportH = min(viewportH, config.WorldMaxHeight)
	ecs := entity.NewECS(viewportW, viewportH)
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(tuning.Seed)
	clock := system.NewClock()
	physics := system.NewPhysicsSystem(ecs)
	players := system.NewPlayerSystem(ecs, physics)
	projectiles := system.NewProjectileSystem(ecs, players, rng, eventDispatcher, tuning.BulletSpeed)
	spawner := system.NewSpawnSystem(ecs, clock, physics, projectiles, rng, eventDispatcher, tuning.EnemyTarget, float64(tuning.FireRateMs))
	states := system.NewStateSystem(ecs, physics, clock, eventDispatcher)

	g := &Game{
		ECS:              ecs,
		Clock:            clock,
		PhysicsSystem:    physics,
		PlayerSystem:     players,
		MovementSystem:   system.NewMovementSystem(ecs),
		WanderSystem:     system.NewWanderSystem(ecs, rng),
		SpawnSystem:      spawner,
		ProjectileSystem: projectiles,
		CombatSystem:     system.NewCombatSystem(ecs, physics, players, spawner, states, eventDispatcher),
		StateSystem:      states,
		EventDispatcher:  eventDispatcher,
		Rng:              rng,
		Maze:             maze.Layout{Rows: config.MazeRows, Cols: config.MazeCols, Inset: config.MazeWallInset},
	}

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.EnemySpawned, listener)
	eventDispatcher.Subscribe(event.EnemyAbsorbed, listener)
	eventDispatcher.Subscribe(event.PlayerHit, listener)
	eventDispatcher.Subscribe(event.BulletFired, listener)
	eventDispatcher.Subscribe(event.GameOver, listener)

	g.buildMaze(viewportW, viewportH)
	players.CreatePlayer(viewportW/2, viewportH/2, tuning.PlayerStartSize)
	spawner.Update(0)

	return g
}

func (g *Game) buildMaze(width, height float64) {
	for _, block := range g.Maze.Blocks(width, height) {
		id := g.ECS.NewEntity()
		g.ECS.Positions.Put(id, &component.Position{X: block.X, Y: block.Y})
		g.ECS.Bodies.Put(id, &component.Body{W: block.W, H: block.H})
		g.ECS.Renderables.Put(id, &component.Renderable{Color: config.WallColor, Shape: component.ShapeRect})
		g.ECS.Walls.Put(id, &component.Wall{Row: block.Row, Col: block.Col})
		g.PhysicsSystem.AddBody(id, system.TagWall)
	}
}

// Update — один кадр. Порядок как у хоста с аркадной физикой: таймеры,
// шаг физики с разбором перекрытий, затем логика кадра. После конца
// игры мир заморожен.
func (g *Game) Update(deltaTime float64) {
	if g.ECS.GameState.Phase == component.GameOver {
		return
	}
	g.frame++
	g.ECS.GameTime += deltaTime

	g.Clock.Tick(deltaTime * 1000)
	g.PhysicsSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	if g.ECS.GameState.Phase == component.GameOver {
		return
	}

	g.MovementSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.WanderSystem.Update(deltaTime)
	g.SpawnSystem.Update(deltaTime)
}

// SetInput задаёт состояние клавиш направления на следующий кадр.
func (g *Game) SetInput(in component.Input) {
	g.ECS.Input = in
}

// ToggleFire переключает стрельбу врагов.
func (g *Game) ToggleFire() bool {
	return g.StateSystem.ToggleFire()
}

// Resize подгоняет видимую область под новое окно. Лабиринт строится
// один раз и не перестраивается.
func (g *Game) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == g.ECS.Viewport.W && height == g.ECS.Viewport.H {
		return
	}
	g.ECS.Viewport = component.Viewport{
		W: min(width, config.WorldMaxWidth),
		H: min(height, config.WorldMaxHeight),
	}
}

func (g *Game) Phase() component.Phase { return g.ECS.GameState.Phase }
func (g *Game) IsOver() bool           { return g.ECS.GameState.Phase == component.GameOver }
func (g *Game) Frame() int             { return g.frame }
func (g *Game) GetGameTime() float64   { return g.ECS.GameTime }
func (g *Game) Readout() string        { return system.ReadoutText(g.ECS) }
func (g *Game) FireButtonText() string { return system.FireButtonText(g.ECS) }

// GameEventListener обновляет счётчики партии.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemySpawned:
		l.game.Stats.Spawned++
	case event.EnemyAbsorbed:
		l.game.Stats.Absorbed++
	case event.PlayerHit:
		l.game.Stats.Hits++
	case event.BulletFired:
		l.game.Stats.BulletsFired++
	case event.GameOver:
		log.Printf("stats: spawned=%d absorbed=%d hits=%d bullets=%d frames=%d",
			l.game.Stats.Spawned, l.game.Stats.Absorbed, l.game.Stats.Hits, l.game.Stats.BulletsFired, l.game.frame)
	}
}
