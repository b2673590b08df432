package dispatch

import "shipx-dispatch-service/workers/dispatch/shipx"

// ExampleShipmentRequest is the sandbox sample payload used by the one-shot
// CLI run and the scheduled worker.
func ExampleShipmentRequest() *shipx.ShipmentRequest {
	return &shipx.ShipmentRequest{
		Receiver: shipx.Peer{
			FirstName: "Jan",
			LastName:  "Kowalski",
			Email:     "jan.kowalski@example.com",
			Phone:     "321123123",
			Address: shipx.Address{
				Street:         "Czerniakowska",
				BuildingNumber: "87A",
				City:           "Warszawa",
				PostCode:       "00-718",
				CountryCode:    "PL",
			},
		},
		Sender: shipx.Peer{
			CompanyName: "Best Sklep",
			FirstName:   "Anna",
			LastName:    "Nowak",
			Email:       "anna.nowak@example.com",
			Phone:       "123321123",
			Address: shipx.Address{
				Street:         "Cybernetyki",
				BuildingNumber: "10",
				City:           "Warszawa",
				PostCode:       "02-677",
				CountryCode:    "PL",
			},
		},
		Parcels: []shipx.Parcel{
			{
				Dimensions: shipx.Dimensions{
					Length: 110,
					Width:  220,
					Height: 330,
					Unit:   "mm",
				},
				Weight: shipx.Weight{
					Amount: 1.5,
					Unit:   "kg",
				},
				IsNonStandard: false,
			},
		},
		Insurance: &shipx.Insurance{
			Amount:   25,
			Currency: "PLN",
		},
		CustomAttributes: map[string]string{
			"sending_method": "dispatch_order",
		},
		Service:   "inpost_courier_standard",
		Reference: "Order 10001",
		Comments:  "Fragile, handle with care",
	}
}
