package content

// File IDs in the default table, in explorer order.
const (
	ThatoPy     = "thato.py"
	Thato2Py    = "thato2.py"
	MainPy      = "main.py"
	GetSitesSQL = "getSites.sql"
	PackageJSON = "package.json"
	ProfileJSON = "profile.json"
	Readme      = "README.md"
)

var defaultTable = NewTable(
	FileEntry{ID: ThatoPy, Name: ThatoPy, Language: Python, Body: thatoBody},
	FileEntry{ID: Thato2Py, Name: Thato2Py, Language: Python, Body: thato2Body},
	FileEntry{ID: MainPy, Name: MainPy, Language: Python, Body: mainBody},
	FileEntry{ID: GetSitesSQL, Name: GetSitesSQL, Language: SQL, Body: getSitesBody},
	FileEntry{ID: PackageJSON, Name: PackageJSON, Language: JSON, Body: packageBody},
	FileEntry{ID: ProfileJSON, Name: ProfileJSON, Language: JSON, Body: profileBody},
	FileEntry{ID: Readme, Name: Readme, Language: Markdown, Body: readmeBody},
)

// Default returns the compiled-in table.
func Default() *Table { return defaultTable }

const thatoBody = `# This is where we all start, right? A simple hello world.
print("Hello World")`

const thato2Body = `from flask import Flask, render_template_string, jsonify, send_file
import io

app = Flask("Thato Matona's Portfolio")

@app.route('/')
def index():
    return render_template_string("Hello, welcome to my world!") # Sorry, no css

if __name__ == '__main__':
  app.run(debug=True, port=5000)`

const mainBody = `import pandas as pd
import numpy as np
from fuzzywuzzy import process

def haversine(lat1, lon1, lat2, lon2):
    try: 
        lat1, lon1, lat2, lon2 = [float(v) for v in [lat1, lon1, lat2, lon2]]
        R = 6371000  # Radius of Earth in meters
        lat1, lon1, lat2, lon2 = map(np.radians, [lat1, lon1, lat2, lon2])
        dlat = lat2 - lat1
        dlon = lon2 - lon1
        a = np.sin(dlat/2.0)**2 + np.cos(lat1) * np.cos(lat2) * np.sin(dlon/2.0)**2
        c = 2 * np.arcsin(np.sqrt(a))
        return round(R * c, 2)
    except ValueError:
        return float('inf')

def processMatchedDF(matched_df: pd.DataFrame):
    scores = []
    distances = []

    for __, site in matched_df.iterrows():
        momar_name = site['SiteName']
        mod_name = site['Site Name']
        momar_lat = site['Latitude_momar']
        momar_long = site['Longitude_momar']
        mod_lat = site['Latitude_mod']
        mod_long = site['Longitude_mod']

        _, score = process.extractOne(momar_name, [mod_name])
        distance = haversine(momar_lat, momar_long, mod_lat, mod_long)

        scores.append(score)
        distances.append(distance)

    matched_df['Name Check Score'] = scores
    matched_df['Distance Check Difference (m)'] = distances
    matched_df['BS Numbers match'] = ['Yes'] * len(matched_df)

    # Fix column order
    column_order = ['SiteId', 'SiteName', 'Latitude_momar', 'Longitude_momar', 'BS Number', 'Site ID', 'Site Name', 'Latitude_mod', 'Longitude_mod', "Operational Status", "Site Type", "Installation Type", 'Name Check Score', 'Distance Check Difference (m)', 'BS Numbers match']
    matched_df = matched_df[column_order]

def processFuzzyMatchedDF(fuzzy_matched_df: pd.DataFrame):
    scores = []
    bs_number_scores = []
    distances = []

    for __, site in fuzzy_matched_df.iterrows():
        momar_name = site['SiteName']
        mod_name = str(site['Site Name'])
        momar_lat = site['Latitude_momar']
        momar_long = site['Longitude_momar']
        mod_lat = site['Latitude_mod']
        mod_long = site['Longitude_mod']
        momar_bs_numbers = list(map(str, [site['2G.BS_Number'], site['3G.BS_Number'], site['4G.BS_Number']]))
        mod_formatted_bs_number = str(site['BS Num Formatted']).strip()

        _, score = process.extractOne(momar_name, [mod_name])
        _, bs_number_score = process.extractOne(mod_formatted_bs_number, momar_bs_numbers)
        distance = haversine(momar_lat, momar_long, mod_lat, mod_long)
        
        scores.append(0 if mod_name.strip()=='' else score)
        bs_number_scores.append('Yes' if (bs_number_score==100 and mod_formatted_bs_number!='') else 'No')
        distances.append(distance)

    fuzzy_matched_df['Name Check Score'] = scores
    fuzzy_matched_df['Distance Check Difference (m)'] = distances
    fuzzy_matched_df['BS Numbers match'] = bs_number_scores

    column_order = ['SiteId', 'SiteName', 'Latitude_momar', 'Longitude_momar', '2G.BS_Number', '3G.BS_Number', '4G.BS_Number', 'BS Num Formatted', 'Site ID', 'Site Name', 'Latitude_mod', 'Longitude_mod', "Operational Status", "Site Type", "Installation Type", 'Name Check Score', 'Distance Check Difference (m)', 'BS Numbers match']
    fuzzy_matched_df = fuzzy_matched_df[column_order]


if __name__ == '__main__':    
    excel_file_name = 'bs_code_matches.xlsx'
    print('Reading file...')

    matched_df = pd.read_excel(excel_file_name, 
                              sheet_name='Matched', 
                              usecols=['SiteId', 'SiteName', 'Latitude_momar', 'Longitude_momar', 'BS Number', 'Site ID', 'Site Name', 'Latitude_mod', 'Longitude_mod', "Operational Status", "Site Type", "Installation Type"])

    fuzzy_matched_df = pd.read_excel(excel_file_name, 
                              sheet_name='Fuzzy_Matched_momar', 
                              usecols=['SiteId', 'SiteName', 'Latitude_momar', 'Longitude_momar', '2G.BS_Number', '3G.BS_Number', '4G.BS_Number', 'BS Num Formatted', 'Site ID', 'Site Name', 'Latitude_mod', 'Longitude_mod', "Operational Status", "Site Type", "Installation Type"])

    print('Processing file...')
    processMatchedDF(matched_df)
    processFuzzyMatchedDF(fuzzy_matched_df)

    with pd.ExcelWriter('sanity_checks.xlsx') as writer:
        matched_df.to_excel(writer, sheet_name='Matched', index=False)
        fuzzy_matched_df.to_excel(writer, sheet_name='Fuzzy_Matched', index=False)
        
    print('Done')`

const getSitesBody = `SELECT 
    *,
    COUNT(*) OVER (PARTITION BY SiteID) AS SiteID_Count
FROM Reports
WHERE ApprovedOn > '2024-07-01'
ORDER BY SiteID ASC, [ApprovedDate] DESC`

const packageBody = `{
  "name": "PORTFOLIO",
  "version": "1.0.0",
  "description": "A vs code-themed portfolio showcasing Thato Matona",
  "scripts": {
    "start": "python thato.py"
  }
}`

const profileBody = `{
  "name": "Thato Matona",
  "role": "EMF Compliance Engineer",
  "location": "South Africa",
  "email": "tmatona@alphawave.co.za",
  "phone": "+27732207474",
  "skills": ["Python", "SQL", "Power BI", "ETL", "Data Quality", "Automation"],
  "Currently Learning": ["AI", "Reinforcement Learning", "Large Language Models"],
  "Currently Working On": "A mobile network simulator game in Python to teach people how mobile
                          networks work and the challenges of network planning and optimization."
}`

const readmeBody = `# Thato Matona — EMF Compliance Engineer

**Contact**
- Email: tmatona@alphawave.co.za
- Mobile: +27732207474

## Summary
Engineer experienced with Python, SQL, Power BI, data analysis and automation. 
Built complex SQL queries and dashboards, automated reporting pipelines, and resolved large-scale 
data quality issues. Passionate about turning messy data into actionable reports.

## Work Experience
**Alphawave Mobile Network Services** — EMF Compliance Engineer (2022–present)
- Built and maintain SQL queries and Power BI dashboards for operational reporting
- Automated reporting pipelines, certificate tracking and assessment reports
- Developed Python scripts for DB validation and automated error corrections
- Resolved legacy data quality issues integrating with momar and Netcon datasets

**Outlier.ai (G2i Inc)** — Software Engineer (AI RLHF) (2024–present)
- Created and validated structured datasets for AI training
- Evaluated and corrected AI generated code

## Projects
**Energy Leading Services** — Developed a data software to identify and prioritise high value 
                              leads and compiled a user manual for stakeholders.

## Technical Skills
- Python (pandas, numpy), SQL, Power BI, Excel
- Selenium, Playwright, Power Automate
- ETL workflows, validation, automated error correction`
