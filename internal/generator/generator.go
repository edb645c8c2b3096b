package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/ananyac/lifelink/backend/internal/domain"
	"github.com/ananyac/lifelink/backend/internal/service"
)

// Dataset contains the generated blood banks and donors.
type Dataset struct {
	Banks  []service.BankInput  `json:"banks"`
	Donors []service.DonorInput `json:"donors"`
}

// metro is a city centre around which facilities are scattered.
type metro struct {
	name      string
	latitude  float64
	longitude float64
}

var metros = []metro{
	{"Bengaluru", 12.9716, 77.5946},
	{"Mumbai", 19.0760, 72.8777},
	{"Delhi", 28.6139, 77.2090},
	{"Chennai", 13.0827, 80.2707},
	{"Kolkata", 22.5726, 88.3639},
	{"Hyderabad", 17.3850, 78.4867},
	{"Pune", 18.5204, 73.8567},
}

var bankNamePrefixes = []string{
	"Central", "City", "Metro", "Regional", "Community",
	"District", "LifeLine", "Unity", "Apex", "Hope",
}

var bankNameSuffixes = []string{
	"Blood Bank", "Blood Centre", "Transfusion Centre", "Blood Services",
}

var donorFirstNames = []string{
	"Aarav", "Vivaan", "Ananya", "Diya", "Ishaan", "Meera",
	"Rohan", "Sanya", "Kabir", "Priya", "Arjun", "Nisha",
}

var donorLastNames = []string{
	"Sharma", "Patel", "Reddy", "Iyer", "Khan", "Das",
	"Mehta", "Nair", "Singh", "Bose",
}

// Generator produces synthetic seed data for the blood bank graph.
type Generator struct {
	cfg  Config
	rand *rand.Rand
}

// New returns a configured Generator instance.
func New(cfg Config) *Generator {
	defaults := DefaultConfig()
	if cfg.NumBanks <= 0 {
		cfg.NumBanks = defaults.NumBanks
	}
	if cfg.NumDonors < 0 {
		cfg.NumDonors = defaults.NumDonors
	}
	if cfg.MaxUnits <= 0 {
		cfg.MaxUnits = defaults.MaxUnits
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:  cfg,
		rand: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Generate synthesises banks and donors. It respects context cancellation.
func (g *Generator) Generate(ctx context.Context) (Dataset, error) {
	banks := make([]service.BankInput, 0, g.cfg.NumBanks)
	for i := 0; i < g.cfg.NumBanks; i++ {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}
		banks = append(banks, g.randomBank(i))
	}

	donors := make([]service.DonorInput, 0, g.cfg.NumDonors)
	for i := 0; i < g.cfg.NumDonors; i++ {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}
		donors = append(donors, g.randomDonor())
	}

	return Dataset{Banks: banks, Donors: donors}, nil
}

func (g *Generator) randomBank(idx int) service.BankInput {
	city := metros[g.rand.Intn(len(metros))]
	// Jitter of roughly +-0.25 degrees keeps facilities within metro range.
	latitude := city.latitude + (g.rand.Float64()-0.5)*0.5
	longitude := city.longitude + (g.rand.Float64()-0.5)*0.5

	inventory := make(map[string]int, len(domain.BloodTypes))
	for _, bloodType := range domain.BloodTypes {
		if g.rand.Float64() < g.cfg.EmptyChance {
			inventory[bloodType] = 0
			continue
		}
		inventory[bloodType] = 1 + g.rand.Intn(g.cfg.MaxUnits)
	}

	active := g.rand.Float64() >= g.cfg.InactiveChance

	name := fmt.Sprintf("%s %s %s",
		city.name,
		bankNamePrefixes[g.rand.Intn(len(bankNamePrefixes))],
		bankNameSuffixes[g.rand.Intn(len(bankNameSuffixes))],
	)

	return service.BankInput{
		ID:            fmt.Sprintf("BB-%05d", idx+1),
		Name:          name,
		Address:       fmt.Sprintf("%d %s Road, %s", 1+g.rand.Intn(400), city.name, city.name),
		Latitude:      latitude,
		Longitude:     longitude,
		ContactNumber: g.randomPhone(),
		Active:        &active,
		Inventory:     inventory,
	}
}

func (g *Generator) randomDonor() service.DonorInput {
	city := metros[g.rand.Intn(len(metros))]
	return service.DonorInput{
		FullName: fmt.Sprintf("%s %s",
			donorFirstNames[g.rand.Intn(len(donorFirstNames))],
			donorLastNames[g.rand.Intn(len(donorLastNames))],
		),
		BloodType: domain.BloodTypes[g.rand.Intn(len(domain.BloodTypes))],
		Contact:   g.randomPhone(),
		Address:   fmt.Sprintf("%d %s Street, %s", 1+g.rand.Intn(900), city.name, city.name),
	}
}

func (g *Generator) randomPhone() string {
	return fmt.Sprintf("+91%d", 6000000000+g.rand.Int63n(3999999999))
}
