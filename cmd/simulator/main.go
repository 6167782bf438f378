package main

import (
	"encoding/json"
	"math/rand"
	"os"
	"strconv"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/vehicle-tco/internal/feed"
	"github.com/ukydev/vehicle-tco/internal/models"
)

// Listing shapes by drivetrain, roughly matching the used-car market: price
// band, consumption band per mil, and plausible model years.
type listingProfile struct {
	fuelLabels  []string
	priceMin    float64
	priceMax    float64
	consMin     float64
	consMax     float64
	sizeClasses []models.SizeClass
}

var profiles = []listingProfile{
	{[]string{"Bensin", "gasoline"}, 60000, 350000, 0.55, 0.95, []models.SizeClass{models.SizeSmall, models.SizeMedium, models.SizeLarge}},
	{[]string{"Diesel"}, 90000, 450000, 0.45, 0.75, []models.SizeClass{models.SizeMedium, models.SizeLarge, models.SizeSUV}},
	{[]string{"Laddhybrid", "Plug-in Hybrid"}, 200000, 600000, 0.25, 0.50, []models.SizeClass{models.SizeMedium, models.SizeSUV}},
	{[]string{"Elhybrid"}, 150000, 450000, 0.35, 0.60, []models.SizeClass{models.SizeSmall, models.SizeMedium}},
	{[]string{"El", "Electric"}, 250000, 700000, 1.4, 2.2, []models.SizeClass{models.SizeMedium, models.SizeSUV}},
}

func randomListing(username string) feed.ListingEvent {
	p := profiles[rand.Intn(len(profiles))]
	facts := models.VehicleFacts{
		Price:             p.priceMin + rand.Float64()*(p.priceMax-p.priceMin),
		FuelType:          p.fuelLabels[rand.Intn(len(p.fuelLabels))],
		ConsumptionPerMil: p.consMin + rand.Float64()*(p.consMax-p.consMin),
		ModelYear:         time.Now().Year() - rand.Intn(12),
		Mileage:           float64(rand.Intn(200000)),
		SizeClass:         p.sizeClasses[rand.Intn(len(p.sizeClasses))],
	}
	// Roughly a third of listings advertise a financing offer.
	if rand.Intn(3) == 0 {
		facts.InterestRate = 3.5 + rand.Float64()*4
	}
	return feed.ListingEvent{Username: username, Facts: facts}
}

func main() {
	broker := os.Getenv("MQTT_BROKER")
	if broker == "" {
		broker = "tcp://localhost:1883"
	}
	topic := os.Getenv("MQTT_TOPIC")
	if topic == "" {
		topic = feed.DefaultTopic
	}
	username := os.Getenv("SIM_USERNAME")
	if username == "" {
		username = "simulator"
	}
	interval := 2 * time.Second
	if v := os.Getenv("SIM_TICK_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			interval = time.Duration(n) * time.Second
		}
	}

	opts := mqtt.NewClientOptions().AddBroker(broker).SetClientID("tco-simulator")
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.WithError(token.Error()).Fatal("Failed to connect to MQTT broker")
	}
	defer client.Disconnect(250)

	log.WithFields(log.Fields{
		"broker":   broker,
		"topic":    topic,
		"interval": interval,
	}).Info("Starting listing simulation")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		event := randomListing(username)
		payload, err := json.Marshal(event)
		if err != nil {
			log.WithError(err).Error("Failed to marshal listing")
			continue
		}
		token := client.Publish(topic, 0, false, payload)
		token.Wait()
		if token.Error() != nil {
			log.WithError(token.Error()).Error("Failed to publish listing")
			continue
		}
		log.WithFields(log.Fields{
			"fuel_type": event.Facts.FuelType,
			"price":     event.Facts.Price,
		}).Info("Published listing")
	}
}
