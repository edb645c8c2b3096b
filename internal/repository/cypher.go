package repository

const upsertBloodBankCypher = `
MERGE (b:BloodBank {id: $bankId})
SET b += $props,
    b.location = point({latitude: $latitude, longitude: $longitude})
WITH b
FOREACH (item IN $inventory |
  MERGE (b)-[:STOCKS]->(i:Inventory {bloodType: item.bloodType})
  SET i.units = item.units
)
`

const searchNearbyBanksCypher = `
MATCH (b:BloodBank {active: true})-[:STOCKS]->(req:Inventory {bloodType: $bloodType})
WHERE req.units > 0
WITH b, req,
     point.distance(b.location, point({latitude: $latitude, longitude: $longitude})) / 1000.0 AS distanceKm
OPTIONAL MATCH (b)-[:STOCKS]->(i:Inventory)
WITH b, req, distanceKm, collect({bloodType: i.bloodType, units: i.units}) AS inventory
RETURN b.id AS bankId,
       b.name AS name,
       b.address AS address,
       b.latitude AS latitude,
       b.longitude AS longitude,
       b.contactNumber AS contactNumber,
       distanceKm,
       req.units AS requestedUnits,
       inventory
ORDER BY distanceKm ASC
`

const listBloodBanksCypher = `
MATCH (b:BloodBank)
WHERE $search = '' OR toLower(b.name) CONTAINS $search
WITH b
ORDER BY b.name ASC
SKIP $skip LIMIT $limit
OPTIONAL MATCH (b)-[:STOCKS]->(i:Inventory)
WITH b, collect({bloodType: i.bloodType, units: i.units}) AS inventory
RETURN b.id AS bankId,
       b.name AS name,
       b.address AS address,
       b.latitude AS latitude,
       b.longitude AS longitude,
       b.contactNumber AS contactNumber,
       b.active AS active,
       b.updatedAt AS updatedAt,
       inventory
`

const countBloodBanksCypher = `
MATCH (b:BloodBank)
WHERE $search = '' OR toLower(b.name) CONTAINS $search
RETURN count(b) AS total
`

const createUserCypher = `
CREATE (u:User {
  id: $id,
  email: $email,
  passwordHash: $passwordHash,
  fullName: $fullName,
  role: $role,
  createdAt: $createdAt
})
`

const findUserByEmailCypher = `
MATCH (u:User {email: $email})
RETURN u.id AS id,
       u.email AS email,
       u.passwordHash AS passwordHash,
       u.fullName AS fullName,
       u.role AS role,
       u.createdAt AS createdAt
LIMIT 1
`

const registerDonorCypher = `
CREATE (d:Donor {
  id: $id,
  fullName: $fullName,
  bloodType: $bloodType,
  contact: $contact,
  address: $address,
  registeredAt: $registeredAt
})
`
