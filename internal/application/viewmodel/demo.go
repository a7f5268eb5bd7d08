package viewmodel

import (
	"math/rand"
	"sync"
)

// Synthesizer genera los datos placeholder pseudo-aleatorios de demo (jitter
// del match score y selección de stock photo). Está aislado a propósito: es
// comportamiento de demo, no de producto, y debe poder eliminarse sin tocar la
// lógica real. Los callers NO deben tomar decisiones sobre estos valores; son
// inestables entre renders salvo que se fije la semilla.
//
// Un mismo Synthesizer se comparte entre todos los handlers, y *rand.Rand no
// es seguro para uso concurrente: el mutex serializa el acceso al rng.
type Synthesizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSynthesizer construye el sintetizador con semilla explícita (los tests
// fijan la semilla para verificar idempotencia de los campos deterministas).
func NewSynthesizer(seed int64) *Synthesizer {
	return &Synthesizer{rng: rand.New(rand.NewSource(seed))}
}

// stockPhotos imágenes de relleno para cumplir el mínimo de 3 en la galería.
var stockPhotos = []string{
	"https://images.habitia.dev/stock/apartment-exterior-01.jpg",
	"https://images.habitia.dev/stock/apartment-interior-02.jpg",
	"https://images.habitia.dev/stock/courtyard-03.jpg",
	"https://images.habitia.dev/stock/lobby-04.jpg",
	"https://images.habitia.dev/stock/kitchen-05.jpg",
}

// MatchScore score placeholder entre 70 y 99.
func (s *Synthesizer) MatchScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return 70 + s.rng.Intn(30)
}

// StockPhoto elige una imagen de relleno al azar.
func (s *Synthesizer) StockPhoto() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return stockPhotos[s.rng.Intn(len(stockPhotos))]
}
