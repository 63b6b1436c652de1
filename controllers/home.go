package controllers

// Minimal form UI for exercising the API from a browser.
const homePage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Nutrition Tracker</title>
    <style>
        .form-group { margin-bottom: 10px; }
        .section { border: 1px solid #ccc; padding: 15px; margin-bottom: 20px; border-radius: 5px; }
        .date-range { display: flex; gap: 10px; align-items: center; margin-bottom: 10px; }
    </style>
</head>
<body>
    <h1>Nutrition Tracker</h1>

    <div class="section">
        <h2>Add Entry</h2>
        <form action="/addEntry" method="post">
            <div class="form-group">
                <label>Timestamp: <input type="text" name="timestamp" placeholder="YYYY-MM-DDThh:mm:ss" required></label>
            </div>
            <div class="form-group">
                <label>Description: <input type="text" name="description" required></label>
            </div>
            <div class="form-group">
                <label>Calories: <input type="number" name="calories" required></label>
            </div>
            <div class="form-group">
                <label>Protein: <input type="number" name="protein" required></label>
            </div>
            <div class="form-group">
                <label>Carbs: <input type="number" name="carbs"></label>
            </div>
            <div class="form-group">
                <label>Fat: <input type="number" name="fat"></label>
            </div>
            <div class="form-group">
                <label>Caffeine: <input type="number" name="caffeine"></label>
            </div>
            <button type="submit">Add Entry</button>
        </form>
    </div>

    <div class="section">
        <h2>Delete Entry</h2>
        <form action="/deleteEntry" method="post">
            <div class="form-group">
                <label>Date (YYYY-MM-DD): <input type="text" name="date" required></label>
            </div>
            <button type="submit">Delete Entry</button>
        </form>
    </div>

    <div class="section">
        <h2>Flush All Entries</h2>
        <form action="/flushEntries" method="post">
            <button type="submit">Flush All</button>
        </form>
    </div>

    <div class="section">
        <h2>View Reports</h2>

        <h3>Weekly HTML Report</h3>
        <form action="/getWeeklyReport" method="get" target="_blank">
            <div class="date-range">
                <label>Start Date: <input type="date" name="start" required></label>
                <label>End Date: <input type="date" name="end" required></label>
            </div>
            <button type="submit">Show Weekly HTML Report</button>
        </form>

        <h3>Daily Entries</h3>
        <form action="/showDaily" method="get" target="_blank">
            <div class="date-range">
                <label>Start Date: <input type="date" name="start"></label>
                <label>End Date: <input type="date" name="end"></label>
            </div>
            <button type="submit">Show Daily Entries</button>
        </form>

        <h3>Summary</h3>
        <form action="/showSummary" method="get" target="_blank">
            <div class="date-range">
                <label>Start Date: <input type="date" name="start"></label>
                <label>End Date: <input type="date" name="end"></label>
            </div>
            <button type="submit">Show Summary</button>
        </form>
    </div>
</body>
</html>
`
